package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/Qu3tzal/sakura-no-hana/common"
)

const (
	driftPetals  = 24
	driftGravity = 12.0
	driftMaxFall = 90.0
)

// Drift is the menu's decorative petal fall: a small Chipmunk space whose
// bodies sway side to side while sinking, recycled above the field once they
// leave it. Purely cosmetic, it never touches a game world.
type Drift struct {
	space  *cp.Space
	bodies []*cp.Body
	rng    *rand.Rand
	clock  float64
}

func NewDrift(rng *rand.Rand) *Drift {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: driftGravity})

	d := &Drift{space: space, rng: rng}
	for i := 0; i < driftPetals; i++ {
		d.bodies = append(d.bodies, d.newPetalBody())
	}
	return d
}

func (d *Drift) newPetalBody() *cp.Body {
	mass := 0.1
	radius := float64(common.PetalSize) / 2
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))

	phase := d.rng.Float64() * 2 * math.Pi
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		sway := cp.Vector{X: math.Sin(d.clock*0.8+phase) * 16}
		cp.BodyUpdateVelocity(b, gravity.Add(sway), damping, dt)
		if v := b.Velocity(); v.Y > driftMaxFall {
			b.SetVelocity(v.X, driftMaxFall)
		}
	})

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetSensor(true)
	d.space.AddBody(body)
	d.space.AddShape(shape)

	d.scatter(body, true)
	return body
}

// scatter places a body above the field, or anywhere on it at startup so the
// first frame already looks mid-fall.
func (d *Drift) scatter(body *cp.Body, anywhere bool) {
	x := float64(d.rng.Intn(common.FieldWidth))
	y := -float64(d.rng.Intn(common.FieldHeight)) - common.PetalSize
	if anywhere {
		y = float64(d.rng.Intn(common.FieldHeight))
	}
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetVelocity(float64(d.rng.Intn(41)-20), float64(d.rng.Intn(40)+20))
}

// Step advances the drift and recycles petals that left the field.
func (d *Drift) Step(dt time.Duration) {
	if d == nil || dt <= 0 {
		return
	}
	d.clock += dt.Seconds()
	d.space.Step(dt.Seconds())
	for _, body := range d.bodies {
		p := body.Position()
		if p.Y > common.FieldHeight+common.PetalSize ||
			p.X < -2*common.PetalSize ||
			p.X > common.FieldWidth+2*common.PetalSize {
			d.scatter(body, false)
		}
	}
}

// Positions returns the top-left corner of each petal sprite.
func (d *Drift) Positions() []common.Vec2 {
	if d == nil {
		return nil
	}
	out := make([]common.Vec2, 0, len(d.bodies))
	for _, body := range d.bodies {
		p := body.Position()
		out = append(out, common.Vec2{X: p.X - common.PetalSize/2, Y: p.Y - common.PetalSize/2})
	}
	return out
}
