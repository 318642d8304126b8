package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw colliders, probes and controller state")
	arenaName := flag.String("arena", "arena.yaml", "arena prefab in prefabs/")
	configName := flag.String("config", "character.yaml", "character prefab in prefabs/")
	watch := flag.Bool("watch", false, "reload the character prefab when it changes on disk")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(tps)

	game, err := NewGame(Options{
		Arena:  *arenaName,
		Config: *configName,
		Debug:  *debug,
		Watch:  *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
