package game

import (
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/Qu3tzal/sakura-no-hana/ecs"
)

// BallSpawn is a scripted spawn decision: which column and which color.
type BallSpawn struct {
	X     float64
	Color ecs.Color
}

// directorDispatch calls the script's next_ball with the tick context and
// captures the result. __probe short-circuits the call during the startup
// probe run, which only needs the top level to execute.
const directorDispatch = `
if !__probe {
	__out = next_ball({elapsed: __elapsed, score: __score, combo: __combo, affinity: __affinity})
}
`

// Director runs a tengo spawn pattern script. The script must define
// next_ball(ctx) and return either undefined, to fall back to the plain
// random spawner for that ball, or a map of the form
// {x: number, color: "red"|"blue"|"green"|"yellow"}. The tengo standard
// library is importable, so patterns can bring their own rand and math.
type Director struct {
	compiled *tengo.Compiled
	log      *zap.Logger
}

// NewDirector compiles a pattern script and probes it once, so a broken
// script fails at startup instead of mid-session.
func NewDirector(src []byte, log *zap.Logger) (*Director, error) {
	if log == nil {
		log = zap.NewNop()
	}

	script := tengo.NewScript(append(append([]byte{}, src...), directorDispatch...))
	_ = script.Add("__probe", true)
	_ = script.Add("__elapsed", 0.0)
	_ = script.Add("__score", 0)
	_ = script.Add("__combo", 0)
	_ = script.Add("__affinity", "")
	_ = script.Add("__out", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pattern: compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("pattern: probe run: %w", err)
	}
	if !compiled.IsDefined("next_ball") {
		return nil, fmt.Errorf("pattern: script does not define next_ball")
	}

	return &Director{compiled: compiled, log: log}, nil
}

// NextBall asks the script for the next spawn. ok is false when the script
// declines, errors, or returns something unusable; the caller then spawns
// randomly. Not safe for concurrent use, same as the tick it runs in.
func (d *Director) NextBall(elapsed time.Duration, score, combo int, affinity ecs.Color) (BallSpawn, bool) {
	if d == nil || d.compiled == nil {
		return BallSpawn{}, false
	}

	_ = d.compiled.Set("__probe", false)
	_ = d.compiled.Set("__elapsed", elapsed.Seconds())
	_ = d.compiled.Set("__score", score)
	_ = d.compiled.Set("__combo", combo)
	_ = d.compiled.Set("__affinity", affinity.String())
	_ = d.compiled.Set("__out", nil)

	if err := d.compiled.Run(); err != nil {
		d.log.Warn("pattern script failed", zap.Error(err))
		return BallSpawn{}, false
	}

	out := d.compiled.Get("__out")
	if out == nil || out.IsUndefined() {
		return BallSpawn{}, false
	}

	fields, ok := out.Value().(map[string]interface{})
	if !ok {
		d.log.Warn("pattern script returned a non-map spawn", zap.String("value", out.String()))
		return BallSpawn{}, false
	}
	x, okX := numberField(fields, "x")
	c, okC := colorField(fields, "color")
	if !okX || !okC {
		d.log.Warn("pattern script returned a bad spawn", zap.Any("value", fields))
		return BallSpawn{}, false
	}

	// Keep scripted spawns inside the open top of the field.
	if x < 65 {
		x = 65
	}
	if x > 640 {
		x = 640
	}
	return BallSpawn{X: x, Color: c}, true
}

func numberField(fields map[string]interface{}, key string) (float64, bool) {
	switch v := fields[key].(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func colorField(fields map[string]interface{}, key string) (ecs.Color, bool) {
	name, ok := fields[key].(string)
	if !ok {
		return 0, false
	}
	switch name {
	case "red":
		return ecs.ColorRed, true
	case "blue":
		return ecs.ColorBlue, true
	case "green":
		return ecs.ColorGreen, true
	case "yellow":
		return ecs.ColorYellow, true
	default:
		return 0, false
	}
}
