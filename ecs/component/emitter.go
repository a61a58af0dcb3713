package component

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/Qu3tzal/sakura-no-hana/common"
)

const (
	// EmitterParticles is the fixed pool size of a burst.
	EmitterParticles = 1000
	// EmitterTTL is how long a burst lives before being marked for deletion.
	EmitterTTL = 2 * time.Second
)

// Particle is one point of a burst: rendered position, velocity, remaining
// lifetime, and the alpha derived from it.
type Particle struct {
	Pos   common.Vec2
	Vel   common.Vec2
	Life  time.Duration
	Alpha uint8
}

// Emitter is a fixed-size pool of particles radiating from one origin. Age
// counts the emitter's own lifetime; bursts older than EmitterTTL die.
type Emitter struct {
	Color     color.RGBA
	Center    common.Vec2
	Age       time.Duration
	Particles []Particle
}

// NewEmitter seeds a full pool at the origin. Angles cover the circle, speeds
// range 20..69 px/s and lifetimes 1..3s, so the cloud expands and thins out
// instead of vanishing all at once.
func NewEmitter(c color.RGBA, center common.Vec2, rng *rand.Rand) *Emitter {
	em := &Emitter{
		Color:     c,
		Center:    center,
		Particles: make([]Particle, EmitterParticles),
	}
	for i := range em.Particles {
		angle := float64(rng.Intn(360)) * math.Pi / 180
		speed := float64(rng.Intn(50) + 20)
		em.Particles[i] = Particle{
			Pos:   center,
			Vel:   common.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:  time.Duration(rng.Intn(2000)+1000) * time.Millisecond,
			Alpha: 255,
		}
	}
	return em
}
