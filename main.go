package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/the-caverns/assets"
	"github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/fonts"
	"github.com/automoto/the-caverns/scenes"
	"github.com/automoto/the-caverns/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gomono"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(watcher *assets.Watcher) *Game {
	if err := fonts.LoadFontWithSize(fonts.HUD, gomono.TTF, config.HUD.FPSFontSize); err != nil {
		log.Printf("Warning: Could not load HUD font: %v", err)
	}

	scene := scenes.NewGameScene()
	if watcher != nil {
		scene.WatchAssets(watcher)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, width, height)
	g.scene.Layout(width, height)
	return width, height
}

func parseFlags() {
	flag.BoolVar(&config.Debug.DrawColliders, "debug", false, "Draw collider outlines")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "Skip the menus and load the first map")
	flag.BoolVar(&config.Debug.Verbose, "verbose", false, "Log state transitions and loader details")
	flag.BoolVar(&config.Debug.ResetProgress, "reset-progress", false, "Forget that the storyline intro was shown")
	flag.StringVar(&config.Debug.AssetsDir, "assets", "", "Load assets from this directory and reload maps when they change")
	flag.StringVar(&config.Debug.KeymapFile, "keymap", "", "YAML file overriding the default key bindings")
	flag.Parse()
}

func loadKeymap(path string) {
	bindings, err := config.LoadKeymap(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		log.Printf("Warning: Could not load keymap, using defaults: %v", err)
		return
	}
	config.Input.Bindings = bindings
	log.Printf("Loaded keymap %s", path)
}

func watchAssets(dir string) *assets.Watcher {
	w, err := assets.NewWatcher(assets.WatchDirs(dir)...)
	if err != nil {
		log.Printf("Warning: Could not watch %s for changes: %v", dir, err)
		return nil
	}
	return w
}

func main() {
	parseFlags()

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	env.Apply()

	if config.Debug.KeymapFile != "" {
		loadKeymap(config.Debug.KeymapFile)
	}

	var watcher *assets.Watcher
	if config.Debug.AssetsDir != "" {
		assets.SetDir(config.Debug.AssetsDir)
		if config.Map.ReloadOnChange {
			watcher = watchAssets(config.Debug.AssetsDir)
		}
	}
	if watcher != nil {
		defer watcher.Close()
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence for the storyline flag
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if config.Debug.ResetProgress {
		systems.ResetProgress()
	}

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
