// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-bird-hunter/internal/app"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	game           *app.Game
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.game.HandleResize(outsideWidth, outsideHeight)
	return int(a.game.ECS.Width), int(a.game.ECS.Height)
}

func main() {
	testMode := flag.Bool("test", false, "прогнать самопроверку физики и выйти")
	seed := flag.Int64("seed", 0, "сид генератора случайных чисел (0 — от времени)")
	flag.Parse()

	if *testMode {
		if err := app.SelfCheck(); err != nil {
			log.Fatalf("Самопроверка провалена: %v", err)
		}
		log.Println("Самопроверка пройдена")
		return
	}

	game := app.NewGame(*seed)
	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game))

	appGame := &AppGame{
		stateMachine:   sm,
		game:           game,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Bird Hunter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
