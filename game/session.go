package game

import (
	"math/rand"
	"time"

	"github.com/Qu3tzal/sakura-no-hana/common"
	"github.com/Qu3tzal/sakura-no-hana/config"
	"github.com/Qu3tzal/sakura-no-hana/ecs"
	"github.com/Qu3tzal/sakura-no-hana/ecs/system"
)

const (
	// maxStep caps the simulated time of one tick so frame hitches do not
	// launch entities through walls.
	maxStep = 500 * time.Millisecond

	// sugoiWindow is how long the combo milestone banner stays up.
	sugoiWindow = 1500 * time.Millisecond
)

// Session is one run of the game at a fixed difficulty: a world, its
// systems, and the score state around them. Create one per run and throw it
// away when it stops running.
type Session struct {
	world  *ecs.World
	player ecs.Entity

	preset   config.Preset
	audio    Audio
	rng      *rand.Rand
	director *Director

	animations *system.AnimationSystem
	physics    *system.PhysicsSystem
	sync       *system.SyncSystem
	effects    *system.EffectsSystem
	life       *system.LifeSystem
	particles  *system.ParticleSystem

	running  bool
	score    int
	combo    int
	affinity ecs.Color
	elapsed  time.Duration

	sinceShot     time.Duration
	sinceBall     time.Duration
	sinceSugoi    time.Duration
	sinceAffinity time.Duration
}

// NewSession builds a ready-to-tick run: player first, then the walls, so
// the player keeps the first slot in iteration order. A nil audio is
// replaced by silence, a nil rng by a time-seeded one.
func NewSession(preset config.Preset, audio Audio, rng *rand.Rand) *Session {
	if audio == nil {
		audio = NopAudio{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		world:      ecs.NewWorld(),
		preset:     preset,
		audio:      audio,
		rng:        rng,
		animations: system.NewAnimationSystem(),
		physics:    system.NewPhysicsSystem(),
		sync:       system.NewSyncSystem(),
		effects:    system.NewEffectsSystem(),
		life:       system.NewLifeSystem(),
		particles:  system.NewParticleSystem(),
		running:    true,
		affinity:   ecs.ColorRed,
		// Start the milestone timer far outside the banner window.
		sinceSugoi: time.Hour,
	}
	s.player = NewPlayer(s.world, preset.PlayerLife)
	BuildWalls(s.world)
	return s
}

// SetDirector installs a spawn pattern script. Pass nil to go back to plain
// random spawns.
func (s *Session) SetDirector(d *Director) {
	s.director = d
}

// Advance runs one fixed-order tick. The order is load-bearing: effects
// consume the collision record physics just produced, the drain reads life
// state the life pass just settled, and the sweep must come last so every
// pass saw a stable entity list.
func (s *Session) Advance(dt time.Duration, in Input) {
	if !s.running {
		return
	}

	s.audio.TickPlaylist()

	if dt > maxStep {
		dt = maxStep
	}
	s.elapsed += dt
	s.sinceShot += dt
	s.sinceBall += dt
	s.sinceSugoi += dt
	s.sinceAffinity += dt

	s.applyInput(in)

	if s.sinceBall > s.preset.BallInterval {
		s.spawnBall()
		s.sinceBall = 0
	}

	s.animations.Update(s.world, dt)
	s.physics.Update(s.world, dt)
	s.sync.Update(s.world, dt)
	s.effects.Run(s.world, s.physics.TakeCollisions())
	s.life.Update(s.world, dt)
	s.drainEvents()

	if s.sinceAffinity > s.preset.AffinityInterval {
		s.affinity = s.affinity.Next()
		s.audio.Play(CueAffinity)
		s.sinceAffinity = 0
	}

	s.particles.Update(s.world, dt)
	s.world.Sweep()
}

func (s *Session) applyInput(in Input) {
	movement := s.world.Movements().Get(s.player)
	if movement != nil {
		movement.Velocity = common.Vec2{}
	}

	if in.Shoot && s.sinceShot > s.preset.ShootCooldown {
		if hitbox := s.world.Hitboxes().Get(s.player); hitbox != nil {
			NewPetal(s.world, hitbox.Rect, s.preset.PetalVelocity())
		}
		s.sinceShot = 0
	}

	if movement == nil {
		return
	}
	if in.Left {
		movement.Velocity.X = -s.preset.PlayerSpeed
	} else if in.Right {
		movement.Velocity.X = s.preset.PlayerSpeed
	}
}

func (s *Session) spawnBall() {
	if s.director != nil {
		if spawn, ok := s.director.NextBall(s.elapsed, s.score, s.combo, s.affinity); ok {
			NewBallAt(s.world, spawn.X, spawn.Color, s.preset.BallVelocity)
			return
		}
	}
	NewBall(s.world, s.rng, s.preset.BallVelocity)
}

// drainEvents empties the queue into gameplay reactions. It keeps draining
// after a game-over event so bursts and score from the same tick still
// land.
func (s *Session) drainEvents() {
	queue := s.world.Events()
	for {
		evt, ok := queue.Poll()
		if !ok {
			return
		}
		switch evt.Type {
		case ecs.EventPlayerHit:
			s.combo = 0
			s.audio.Play(CueHit)
			if life := s.world.Lives().Get(s.player); life != nil && life.Points <= 0 {
				s.running = false
				s.audio.StopAll()
			}
		case ecs.EventBallBurst:
			if evt.Burst == nil {
				break
			}
			NewBurst(s.world, evt.Burst.Color, evt.Burst.Center, s.rng)
			if evt.Burst.Color == s.affinity {
				s.scoreMatch()
			} else {
				s.audio.Play(CueWrongBall)
				s.score--
				s.combo = 0
			}
		case ecs.EventDeath:
			// Nothing reacts to deaths yet. The effects pass already
			// marked the entity for the sweep.
		}
	}
}

// scoreMatch advances the combo and score for an affinity-colored burst.
// The milestone check runs on the incremented combo, and only combos past
// the threshold earn escalating score.
func (s *Session) scoreMatch() {
	s.audio.Play(CueGoodBall)
	s.combo++

	if s.combo > s.preset.ComboMin && s.combo%s.preset.SugoiCombo == 0 {
		s.audio.Play(CueSugoi)
		s.sinceSugoi = 0
	}

	if s.combo > s.preset.ComboMin {
		s.score += s.combo
	} else {
		s.score++
	}
}

// Running reports whether the session is still playable. It flips to false
// during the tick in which the player's life runs out and never recovers.
func (s *Session) Running() bool {
	return s.running
}

// Score returns the current score. It can go negative.
func (s *Session) Score() int {
	return s.score
}

// Combo returns the current streak of affinity-colored hits.
func (s *Session) Combo() int {
	return s.combo
}

// Affinity returns the color that currently scores.
func (s *Session) Affinity() ecs.Color {
	return s.affinity
}

// PlayerLife returns the player's remaining life points, zero once dead.
func (s *Session) PlayerLife() int {
	life := s.world.Lives().Get(s.player)
	if life == nil {
		return 0
	}
	if life.Points < 0 {
		return 0
	}
	return life.Points
}

// ShowSugoi reports whether the combo milestone banner should be on screen.
func (s *Session) ShowSugoi() bool {
	return s.combo > s.preset.ComboMin &&
		s.combo%s.preset.SugoiCombo == 0 &&
		s.sinceSugoi < sugoiWindow
}

// Preset returns the tuning table the session runs on.
func (s *Session) Preset() config.Preset {
	return s.preset
}

// World exposes the entity world for rendering and tests.
func (s *Session) World() *ecs.World {
	return s.world
}
