// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-bird-hunter/internal/app"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState — основное игровое состояние. Опрашивает ввод, передаёт
// жест игре и рисует мир через промежуточный буфер, чтобы тряска
// экрана не задевала HUD.
type GameState struct {
	stateMachine *StateMachine
	game         *app.Game

	worldImage *ebiten.Image
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	return &GameState{
		stateMachine: sm,
		game:         game,
	}
}

// GetGame возвращает игру; нужна паузе для совместной отрисовки.
func (s *GameState) GetGame() *app.Game {
	return s.game
}

func (s *GameState) Enter() {}

func (s *GameState) Update(deltaTime float64) error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.game.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		s.game.RenderSystem.ToggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.stateMachine.SetState(NewPauseState(s.stateMachine, s))
		return nil
	}

	// Жест рогатки — до тика мира
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.game.PressAt(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.game.ReleaseAt(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.game.MoveTo(x, y)
	}

	s.game.Update(deltaTime)
	return nil
}

func (s *GameState) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	if s.worldImage == nil || s.worldImage.Bounds().Dx() != w || s.worldImage.Bounds().Dy() != h {
		s.worldImage = ebiten.NewImage(w, h)
	}

	s.game.DrawWorld(s.worldImage)

	shakeX, shakeY := s.game.EffectSystem.ShakeOffset()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(shakeX, shakeY)
	screen.DrawImage(s.worldImage, op)

	s.game.DrawHUD(screen)
}

func (s *GameState) Exit() {}
