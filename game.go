package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"ebiten-scavenger/audio"
	"ebiten-scavenger/components"
	"ebiten-scavenger/config"
	"ebiten-scavenger/data"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/screens"
	"ebiten-scavenger/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg      config.GameConfig
	catalog  *data.TileCatalog
	log      logrus.FieldLogger
	effects  systems.EffectHook
	keyboard *screens.KeyboardInput

	session     *session
	screenStack *screens.ScreenStack
	width       int
	height      int
}

// NewGame creates a new game instance showing the start screen
func NewGame(cfg config.GameConfig, catalog *data.TileCatalog, log logrus.FieldLogger) *Game {
	width, height := config.GetWindowSize(cfg.Board.Columns, cfg.Board.Rows)

	player := audio.NewEffectPlayer(cfg.Volume, log)
	if cfg.MusicPath != "" {
		if err := player.PlayBGM(cfg.MusicPath); err != nil {
			log.WithError(err).Warn("background music disabled")
		}
	}

	g := &Game{
		cfg:         cfg,
		catalog:     catalog,
		log:         log,
		effects:     systems.EffectHooks{player, systems.LogEffectHook{Log: log}},
		keyboard:    screens.NewKeyboardInput(),
		screenStack: screens.NewScreenStack(),
		width:       width,
		height:      height,
	}
	g.screenStack.Push(screens.NewStartScreen(width, height))
	return g
}

// newRun starts a fresh session on the game screen
func (g *Game) newRun() error {
	keyboard := func(*ecs.World, *components.GameState) systems.InputSource { return g.keyboard }
	s, err := newSession(g.cfg, g.catalog, keyboard, g.effects, g.log)
	if err != nil {
		return err
	}
	g.session = s

	renderer := screens.NewBoardRenderer(g.catalog, s.messages, g.cfg.Board.Columns, g.cfg.Board.Rows)
	g.screenStack.Replace(screens.NewGameScreen(s.world, s.state, s.scheduler, renderer, s.messages, g.width, g.height))
	return nil
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screenStack.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		return g.newRun()
	case errors.Is(err, screens.ErrGameOver):
		g.screenStack.Replace(screens.NewGameOverScreen(g.session.state.Level, g.width, g.height))
		return nil
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	}
	g.log.WithError(err).Error("game stopped")
	return err
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
