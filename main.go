package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"wondermap/maps"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hot reload of map data and scripts)")
	start := flag.String("map", "wonderland", "starting map name")
	flag.Parse()

	id, ok := maps.ParseID(*start)
	if !ok {
		log.Fatalf("unknown map %q", *start)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth*4, baseHeight*4)
	ebiten.SetWindowTitle("wondermap")

	if err := ebiten.RunGame(NewGame(id, *debug)); err != nil {
		log.Fatal(err)
	}
}
