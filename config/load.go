package config

import (
	"embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsFS embed.FS

type presetSpec struct {
	ComboMin          int     `yaml:"combo_min"`
	PlayerLife        int     `yaml:"player_life"`
	BallVelocity      float64 `yaml:"ball_velocity"`
	SugoiCombo        int     `yaml:"sugoi_combo"`
	BallIntervalMS    int     `yaml:"ball_interval_ms"`
	PlayerSpeed       float64 `yaml:"player_speed"`
	ShootCooldownMS   int     `yaml:"shoot_cooldown_ms"`
	AffinityIntervalS int     `yaml:"affinity_interval_s"`
}

type presetsFile struct {
	Presets map[string]presetSpec `yaml:"presets"`
}

// Load reads a preset table. An empty path loads the embedded defaults; a
// named file must exist, parse, cover all four difficulties, and validate.
func Load(path string) (map[Difficulty]Preset, error) {
	var (
		data []byte
		name string
		err  error
	)
	if path == "" {
		name = "embedded presets.yaml"
		data, err = presetsFS.ReadFile("presets.yaml")
	} else {
		name = path
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", name, err)
	}

	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}

	table := make(map[Difficulty]Preset, len(Difficulties()))
	for _, d := range Difficulties() {
		spec, ok := file.Presets[d.String()]
		if !ok {
			return nil, fmt.Errorf("config: %s: missing preset %q", name, d)
		}
		p := Preset{
			ComboMin:         spec.ComboMin,
			PlayerLife:       spec.PlayerLife,
			BallVelocity:     spec.BallVelocity,
			SugoiCombo:       spec.SugoiCombo,
			BallInterval:     time.Duration(spec.BallIntervalMS) * time.Millisecond,
			PlayerSpeed:      spec.PlayerSpeed,
			ShootCooldown:    time.Duration(spec.ShootCooldownMS) * time.Millisecond,
			AffinityInterval: time.Duration(spec.AffinityIntervalS) * time.Second,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("config: %s: preset %q: %w", name, d, err)
		}
		table[d] = p
	}
	return table, nil
}
