package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-scavenger/components"
	"ebiten-scavenger/ecs"
	"ebiten-scavenger/systems"
)

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	world     *ecs.World
	state     *components.GameState
	scheduler *systems.TurnScheduler
	renderer  *BoardRenderer
	messages  *systems.MessageLog
	intro     *ModalScreen
	// screenStack holds modals opened over the board
	screenStack *ScreenStack
}

// NewGameScreen creates a new game screen
func NewGameScreen(
	world *ecs.World,
	state *components.GameState,
	scheduler *systems.TurnScheduler,
	renderer *BoardRenderer,
	messages *systems.MessageLog,
	width, height int,
) *GameScreen {
	return &GameScreen{
		BaseScreen:  NewBaseScreen(width, height),
		world:       world,
		state:       state,
		scheduler:   scheduler,
		renderer:    renderer,
		messages:    messages,
		intro:       NewLevelIntroScreen(""),
		screenStack: NewScreenStack(),
	}
}

// Update advances the turn scheduler by one tick unless a modal is open
func (s *GameScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && s.screenStack.Peek() == nil {
		s.screenStack.Push(NewLogScreen(s.messages, s.GetWidth()*3/4, s.GetHeight()*3/4))
		return nil
	}

	if s.screenStack.Peek() != nil {
		if err := s.screenStack.Update(); err == ErrCloseScreen {
			s.screenStack.Pop()
		} else if err != nil {
			return err
		}
		return nil
	}

	if err := s.scheduler.Update(1.0 / float64(ebiten.TPS())); err != nil {
		return err
	}
	if s.state.IsOver() {
		return ErrGameOver
	}
	return nil
}

// Draw draws the board, then the level intro card or any open modal
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderer.Draw(s.world, s.state, screen)

	if s.scheduler.InIntro() {
		s.intro.SetTitle(systems.LevelIntroText(s.state.Level))
		s.intro.Draw(screen)
	}

	if s.screenStack.Peek() != nil {
		s.screenStack.Draw(screen)
	}
}
