package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tilecollide/assets"
	"github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/fonts"
	"github.com/automoto/tilecollide/shared/leveldata"
	"github.com/automoto/tilecollide/viewer"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds  image.Rectangle
	scene   *viewer.Scene
	watcher *config.Watcher
	cfgPath string
}

func NewGame(levels []*leveldata.Level, levelIndex int) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: HUD disabled: %v", err)
	}
	return &Game{
		bounds: image.Rectangle{},
		scene:  viewer.NewScene(levels, levelIndex),
	}
}

func (g *Game) Update() error {
	g.pollConfig()
	g.scene.Update()
	return nil
}

// pollConfig reloads the config file when the watcher reports a write.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Events:
		if err := config.LoadFile(g.cfgPath); err != nil {
			log.Printf("Warning: config reload failed: %v", err)
			return
		}
		g.scene.ReloadTiles()
	case err := <-g.watcher.Errors:
		log.Printf("Warning: config watcher: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Viewer.Width, config.Viewer.Height)
	return config.Viewer.Width, config.Viewer.Height
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file, watched for changes")
	levelName := flag.String("level", "", "level to open (defaults to the config's viewer.level)")
	flag.Parse()

	if *cfgPath != "" {
		if err := config.LoadFile(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *levelName != "" {
		config.Viewer.Level = *levelName
	}

	levels := assets.MustLoadLevels(config.Viewer.Layer)
	levelIndex := 0
	for i, l := range levels {
		if l.Name == config.Viewer.Level {
			levelIndex = i
		}
	}

	game := NewGame(levels, levelIndex)
	if *cfgPath != "" {
		w, err := config.NewWatcher(*cfgPath)
		if err != nil {
			log.Printf("Warning: config hot reload disabled: %v", err)
		} else {
			defer w.Close()
			game.watcher = w
			game.cfgPath = *cfgPath
		}
	}

	ebiten.SetWindowSize(int(float64(config.Viewer.Width)*config.Viewer.Scale), int(float64(config.Viewer.Height)*config.Viewer.Scale))
	ebiten.SetWindowTitle("tilecollide")
	ebiten.SetTPS(config.Viewer.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
