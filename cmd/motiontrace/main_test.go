package main

import (
	"strings"
	"testing"

	"github.com/milk9111/platformer/motion"
)

func TestLookupScenario(t *testing.T) {
	for _, name := range scenarioNames() {
		if _, err := lookupScenario(name); err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
	}
	if _, err := lookupScenario("moonwalk"); err == nil || !strings.Contains(err.Error(), "moonwalk") {
		t.Fatalf("expected unknown scenario error, got %v", err)
	}
}

func TestRunRejectsBadArgs(t *testing.T) {
	if _, err := run("arena.yaml", "character.yaml", scenarios["midair"], 0, 0.02); err == nil {
		t.Fatalf("expected error for zero ticks")
	}
	if _, err := run("arena.yaml", "character.yaml", scenarios["midair"], 10, 0); err == nil {
		t.Fatalf("expected error for zero dt")
	}
}

func TestGroundJumpTrace(t *testing.T) {
	rows, err := run("arena.yaml", "character.yaml", scenarios["ground-jump"], 60, 0.02)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !rows[settleTicks-1].state.Grounded {
		t.Fatalf("character did not land during the settle window")
	}

	jumped := -1
	for i, r := range rows {
		if r.state.LastJump == motion.JumpGrounded {
			jumped = i
			break
		}
	}
	if jumped != settleTicks {
		t.Fatalf("grounded jump at tick %d, want %d", jumped, settleTicks)
	}
	if rows[jumped].vy <= 0 {
		t.Fatalf("vy after take-off = %v, want upward", rows[jumped].vy)
	}
	if rows[jumped+5].y <= rows[jumped-1].y {
		t.Fatalf("character did not rise: %v -> %v", rows[jumped-1].y, rows[jumped+5].y)
	}
	if rows[jumped+5].clip != "jump" {
		t.Fatalf("clip = %q, want jump", rows[jumped+5].clip)
	}
}

func TestMidairTraceUsesOneCharge(t *testing.T) {
	rows, err := run("arena.yaml", "character.yaml", scenarios["midair"], 60, 0.02)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	r := rows[settleTicks+20]
	if r.state.LastJump != motion.JumpMidair || r.state.MidairJumps != 1 {
		t.Fatalf("tick %d: jump=%v midairs=%d", r.tick, r.state.LastJump, r.state.MidairJumps)
	}
}

func TestRenderMarksJumps(t *testing.T) {
	rows := []traceRow{
		{tick: 0, state: motion.NewState()},
		{tick: 1, state: motion.State{FacingRight: true, LastJump: motion.JumpMidair}},
	}
	out := render(rows, 1)
	if !strings.Contains(out, "midair") || !strings.Contains(out, "tick") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}
