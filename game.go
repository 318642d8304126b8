package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// tps matches the fixed physics step.
	tps = 50
	dt  = 1.0 / tps
)

type Options struct {
	Arena  string
	Config string
	Debug  bool
	Watch  bool
}

type Game struct {
	frames int
	debug  bool

	opts      Options
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	view      system.View
	watcher   *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		debug: opts.Debug,
		opts:  opts,
	}
	if err := g.reset(); err != nil {
		return nil, err
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("Game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

// reset rebuilds the world from the arena prefab.
func (g *Game) reset() error {
	arena, err := prefabs.LoadArenaSpec(g.opts.Arena)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if g.opts.Config != "" {
		arena.Spawn.Prefab = g.opts.Config
	}

	world := ecs.NewWorld()
	if _, err := entity.LoadArenaToWorld(world, arena); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	physics := system.NewPhysicsSystem(dt, system.DefaultGravity)
	g.world = world
	g.physics = physics
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewMotionSystem(physics),
		physics,
		system.NewAnimationSystem(dt),
		system.NewParticleSystem(dt, system.DefaultGravity, 1),
	)
	scale := float64(baseWidth) / arena.Width
	g.view = system.View{Scale: scale, Height: arena.Height * scale}
	g.render = system.NewRenderSystem(g.view)
	log.Printf("Game: loaded arena %q with %d solids", arena.Name, len(arena.Solids))
	return nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			log.Printf("Game: reset failed: %v", err)
		}
	}
	g.drainWatcher()

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if prefabs.Name(path) != g.opts.Config {
				continue
			}
			g.reloadConfig()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Game: prefab watcher: %v", err)
		default:
			return
		}
	}
}

// reloadConfig swaps the tuning of every character in place. Controllers are
// rebuilt on the next tick; motion state carries over.
func (g *Game) reloadConfig() {
	cfg, err := prefabs.LoadCharacterConfig(g.opts.Config)
	if err != nil {
		log.Printf("Game: reload %s: %v", g.opts.Config, err)
		return
	}
	ecs.ForEach(g.world, component.CharacterMotionComponent.Kind(), func(e ecs.Entity, cm *component.CharacterMotion) {
		cm.Config = cfg
		cm.Controller = nil
	})
	log.Printf("Game: reloaded %s", g.opts.Config)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.view, screen)
		system.DrawMotionDebug(g.world, g.physics.Space(), g.view, screen)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    F1: debug  R: reset", g.frames, ebiten.ActualFPS()))
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
