package config

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty names one of the built-in preset tables.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Normal
	Hard
	Japanese
)

// Difficulties returns every difficulty in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Normal, Hard, Japanese}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	case Japanese:
		return "japanese"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a name to its difficulty, case-insensitive.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	case "japanese":
		return Japanese, nil
	default:
		return Normal, fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// Preset is the tuning table of one difficulty. A session takes its preset
// by value when it starts and never reads the table again, so editing preset
// files mid-game only affects the next session.
type Preset struct {
	ComboMin         int
	PlayerLife       int
	BallVelocity     float64
	SugoiCombo       int
	BallInterval     time.Duration
	PlayerSpeed      float64
	ShootCooldown    time.Duration
	AffinityInterval time.Duration
}

// PetalVelocity is the vertical speed of the player's shots. Petals always
// rise exactly as fast as balls fall.
func (p Preset) PetalVelocity() float64 {
	return -p.BallVelocity
}

// Validate rejects tables that would stall or degenerate the session.
func (p Preset) Validate() error {
	switch {
	case p.ComboMin <= 0:
		return fmt.Errorf("combo_min must be positive, got %d", p.ComboMin)
	case p.PlayerLife <= 0:
		return fmt.Errorf("player_life must be positive, got %d", p.PlayerLife)
	case p.BallVelocity <= 0:
		return fmt.Errorf("ball_velocity must be positive, got %v", p.BallVelocity)
	case p.SugoiCombo <= 0:
		return fmt.Errorf("sugoi_combo must be positive, got %d", p.SugoiCombo)
	case p.BallInterval <= 0:
		return fmt.Errorf("ball_interval must be positive, got %v", p.BallInterval)
	case p.PlayerSpeed <= 0:
		return fmt.Errorf("player_speed must be positive, got %v", p.PlayerSpeed)
	case p.ShootCooldown <= 0:
		return fmt.Errorf("shoot_cooldown must be positive, got %v", p.ShootCooldown)
	case p.AffinityInterval <= 0:
		return fmt.Errorf("affinity_interval must be positive, got %v", p.AffinityInterval)
	}
	return nil
}
