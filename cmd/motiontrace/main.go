// Command motiontrace runs the character controller headless against the
// sandbox arena and prints one table row per physics tick.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/prefabs"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	jumpStyle   = cellStyle.Foreground(lipgloss.Color("205"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
)

var headers = []string{"tick", "x", "y", "vx", "vy", "ground", "crouch", "facing", "windup", "lockout", "midairs", "jump", "clip"}

func main() {
	arenaName := flag.String("arena", "arena.yaml", "arena prefab in prefabs/")
	configName := flag.String("config", "character.yaml", "character prefab in prefabs/")
	scenarioName := flag.String("scenario", "ground-jump", "scenario to run")
	ticks := flag.Int("ticks", 90, "ticks to simulate")
	dt := flag.Float64("dt", 0.02, "physics step in seconds")
	every := flag.Int("every", 1, "print every nth tick")
	flag.Parse()

	sc, err := lookupScenario(*scenarioName)
	if err != nil {
		log.Fatal(err)
	}
	rows, err := run(*arenaName, *configName, sc, *ticks, *dt)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(os.Stdout, titleStyle.Render(fmt.Sprintf("%s: %s (dt=%gs)", sc.name, sc.description, *dt)))
	fmt.Fprintln(os.Stdout, render(rows, *every))
}

type traceRow struct {
	tick   int
	x, y   float64
	vx, vy float64
	state  motion.State
	cfg    motion.Config
	clip   string
}

func run(arenaName, configName string, sc scenario, ticks int, dt float64) ([]traceRow, error) {
	if ticks <= 0 || dt <= 0 {
		return nil, fmt.Errorf("ticks and dt must be positive")
	}
	arena, err := prefabs.LoadArenaSpec(arenaName)
	if err != nil {
		return nil, err
	}
	arena.Spawn.Prefab = configName

	w := ecs.NewWorld()
	character, err := entity.LoadArenaToWorld(w, arena)
	if err != nil {
		return nil, err
	}

	tick := 0
	physics := system.NewPhysicsSystem(dt, system.DefaultGravity)
	scheduler := ecs.NewScheduler(
		system.NewScriptedInputSystem(func() system.InputSnapshot { return sc.input(tick) }),
		system.NewMotionSystem(physics),
		physics,
		system.NewAnimationSystem(dt),
	)

	rows := make([]traceRow, 0, ticks)
	for ; tick < ticks; tick++ {
		scheduler.Update(w)
		rows = append(rows, snapshot(w, character, tick))
	}
	return rows, nil
}

func snapshot(w *ecs.World, e ecs.Entity, tick int) traceRow {
	row := traceRow{tick: tick}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		row.x, row.y = t.X, t.Y
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		v := body.Body.Velocity()
		row.vx, row.vy = v.X, v.Y
	}
	if cm, ok := ecs.Get(w, e, component.CharacterMotionComponent.Kind()); ok {
		row.state = cm.State
		row.cfg = cm.Config
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		row.clip = anim.Current
	}
	return row
}

func render(rows []traceRow, every int) string {
	if every < 1 {
		every = 1
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers(headers...)

	jumps := map[int]bool{}
	n := 0
	for _, r := range rows {
		if r.tick%every != 0 && r.state.LastJump == motion.JumpNone {
			continue
		}
		if r.state.LastJump != motion.JumpNone {
			jumps[n] = true
		}
		t.Row(formatRow(r)...)
		n++
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case jumps[row]:
			return jumpStyle
		default:
			return cellStyle
		}
	})
	return t.String()
}

func formatRow(r traceRow) []string {
	s := r.state
	facing := "R"
	if !s.FacingRight {
		facing = "L"
	}
	jump := ""
	if s.LastJump != motion.JumpNone {
		jump = s.LastJump.String()
	}
	lockout := s.Lockout.Phase(r.cfg.WallJumpTotalTime, r.cfg.WallJumpUncontrollableFraction)
	return []string{
		strconv.Itoa(r.tick),
		fmtFloat(r.x),
		fmtFloat(r.y),
		fmtFloat(r.vx),
		fmtFloat(r.vy),
		strconv.FormatBool(s.Grounded),
		strconv.FormatBool(s.Crouching),
		facing,
		fmt.Sprintf("%s %.2f", s.Windup.Phase, s.Windup.Time),
		fmt.Sprintf("%s %.2f", lockout, s.Lockout.Remaining),
		strconv.Itoa(s.MidairJumps),
		jump,
		r.clip,
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
