package main

import (
	"fmt"
	"sort"

	"github.com/milk9111/platformer/ecs/system"
)

// scenario scripts device input per tick. Tick 0 is the first simulated tick;
// the first settleTicks let the character land on the spawn floor.
type scenario struct {
	name        string
	description string
	input       func(tick int) system.InputSnapshot
}

const settleTicks = 25

var scenarios = map[string]scenario{
	"ground-jump": {
		name:        "ground-jump",
		description: "settle, then run right and tap jump once",
		input: func(tick int) system.InputSnapshot {
			if tick < settleTicks {
				return system.InputSnapshot{}
			}
			return system.InputSnapshot{
				MoveX:        1,
				JumpHeld:     tick == settleTicks,
				JumpJustDown: tick == settleTicks,
			}
		},
	},
	"midair": {
		name:        "midair",
		description: "jump, then tap again near the apex",
		input: func(tick int) system.InputSnapshot {
			press := tick == settleTicks || tick == settleTicks+20
			return system.InputSnapshot{JumpHeld: press, JumpJustDown: press}
		},
	},
	"wall-jump": {
		name:        "wall-jump",
		description: "run into the left wall, jump, then jump off the wall",
		input: func(tick int) system.InputSnapshot {
			press := tick == settleTicks+20 || tick == settleTicks+35
			move := -1.0
			if tick > settleTicks+35 {
				move = 1
			}
			return system.InputSnapshot{MoveX: move, JumpHeld: press, JumpJustDown: press}
		},
	},
	"windup": {
		name:        "windup",
		description: "crouch, hold jump for a second to charge, release",
		input: func(tick int) system.InputSnapshot {
			charging := tick >= settleTicks && tick < settleTicks+50
			return system.InputSnapshot{
				Crouch:       tick >= settleTicks-5 && tick <= settleTicks+50,
				JumpHeld:     charging,
				JumpJustDown: tick == settleTicks,
			}
		},
	},
	"tunnel": {
		name:        "tunnel",
		description: "crawl right under the low roof and let go of crouch inside",
		input: func(tick int) system.InputSnapshot {
			if tick < settleTicks {
				return system.InputSnapshot{}
			}
			return system.InputSnapshot{
				MoveX:  1,
				Crouch: tick < settleTicks+120,
			}
		},
	},
}

func lookupScenario(name string) (scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return scenario{}, fmt.Errorf("unknown scenario %q (have %v)", name, scenarioNames())
	}
	return s, nil
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
