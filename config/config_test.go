package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	table, err := Load("")
	if err != nil {
		t.Fatalf("embedded defaults must load: %v", err)
	}
	if len(table) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(table))
	}

	cases := []struct {
		name  string
		d     Difficulty
		check func(p Preset) bool
		desc  string
	}{
		{"easy_life", Easy, func(p Preset) bool { return p.PlayerLife == 8 }, "easy starts with 8 lives"},
		{"normal_affinity", Normal, func(p Preset) bool { return p.AffinityInterval == 25*time.Second }, "normal rotates affinity every 25s"},
		{"hard_spawn_rate", Hard, func(p Preset) bool { return p.BallInterval == 250*time.Millisecond }, "hard spawns every 250ms"},
		{"japanese_milestone", Japanese, func(p Preset) bool { return p.SugoiCombo == 50 && p.ComboMin == 20 }, "japanese milestones at 50 with floor 20"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !c.check(table[c.d]) {
				t.Fatalf("%s, got %+v", c.desc, table[c.d])
			}
		})
	}
}

func TestPetalVelocityOpposesBall(t *testing.T) {
	table, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for d, p := range table {
		if p.PetalVelocity() != -p.BallVelocity {
			t.Fatalf("%v: petals must rise as fast as balls fall, got %v vs %v", d, p.PetalVelocity(), p.BallVelocity)
		}
	}
}

func TestLoadDiskOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	data, err := presetsFS.ReadFile("presets.yaml")
	if err != nil {
		t.Fatalf("read embedded: %v", err)
	}
	// Bump one value so the override is observable.
	edited := strings.Replace(string(data), "player_life: 8", "player_life: 9", 1)
	if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("load from disk: %v", err)
	}
	if table[Easy].PlayerLife != 9 {
		t.Fatalf("expected the disk value to win, got %+v", table[Easy])
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadRejectsIncompleteTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	partial := "presets:\n  easy:\n    combo_min: 5\n    player_life: 8\n    ball_velocity: 300\n    sugoi_combo: 10\n    ball_interval_ms: 1000\n    player_speed: 500\n    shoot_cooldown_ms: 250\n    affinity_interval_s: 30\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a table missing difficulties")
	}
}

func TestLoadRejectsInvalidPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	data, err := presetsFS.ReadFile("presets.yaml")
	if err != nil {
		t.Fatalf("read embedded: %v", err)
	}
	broken := strings.Replace(string(data), "player_life: 8", "player_life: 0", 1)
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation to reject zero player_life")
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"NORMAL", Normal, false},
		{" hard ", Hard, false},
		{"japanese", Japanese, false},
		{"nightmare", Normal, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseDifficulty(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q", c.in)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("expected %v, got %v (%v)", c.want, got, err)
			}
		})
	}
}
