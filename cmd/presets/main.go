// Command presets loads a difficulty preset file, validates it, and prints
// the resolved tables. Run it after editing a preset file to catch mistakes
// before the game does.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Qu3tzal/sakura-no-hana/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: presets [file.yaml]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Validates a preset file, or the built-in presets when no file is given.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	path := flag.Arg(0)
	table, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "presets: %v\n", err)
		os.Exit(1)
	}

	source := path
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("presets ok (%s)\n\n", source)

	for _, d := range config.Difficulties() {
		p := table[d]
		fmt.Printf("%s:\n", d)
		fmt.Printf("  combo_min          %d\n", p.ComboMin)
		fmt.Printf("  player_life        %d\n", p.PlayerLife)
		fmt.Printf("  ball_velocity      %g px/s\n", p.BallVelocity)
		fmt.Printf("  sugoi_combo        %d\n", p.SugoiCombo)
		fmt.Printf("  ball_interval      %s\n", p.BallInterval)
		fmt.Printf("  player_speed       %g px/s\n", p.PlayerSpeed)
		fmt.Printf("  shoot_cooldown     %s\n", p.ShootCooldown)
		fmt.Printf("  affinity_interval  %s\n", p.AffinityInterval)
		fmt.Println()
	}
}
