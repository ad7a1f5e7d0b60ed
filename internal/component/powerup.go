// internal/component/powerup.go
package component

import (
	"image/color"

	"go-bird-hunter/internal/config"
)

// PowerUpType — тип бонуса
type PowerUpType int

const (
	PowerMultiShot PowerUpType = config.PowerUpMultiShot
	PowerSlowTime  PowerUpType = config.PowerUpSlowTime
	PowerBigBall   PowerUpType = config.PowerUpBigBall
	PowerMagnet    PowerUpType = config.PowerUpMagnet
)

var powerUpNames = []string{"MULTISHOT", "SLOW-MO", "BIG BALL", "MAGNET"}

// PowerUp — временный бонус на поле
type PowerUp struct {
	Type      PowerUpType
	SpawnTime float64 // Игровое время появления
	Collected bool
}

// Active — бонус можно подобрать: не собран и не истёк.
func (p *PowerUp) Active(now float64) bool {
	return !p.Collected && now-p.SpawnTime < config.PowerUpDuration
}

// Alpha — прозрачность для затухания в последние 20% времени жизни.
func (p *PowerUp) Alpha(now float64) float64 {
	elapsed := now - p.SpawnTime
	if elapsed > config.PowerUpDuration*0.8 {
		remaining := config.PowerUpDuration - elapsed
		if remaining < 0 {
			return 0
		}
		a := remaining / (config.PowerUpDuration * 0.2)
		if a < 0.2 {
			return 0.2
		}
		return a
	}
	return 1.0
}

// Name возвращает отображаемое имя типа бонуса.
func (p PowerUpType) Name() string {
	return powerUpNames[p]
}

// Color возвращает цвет бонуса.
func (p PowerUpType) Color() color.RGBA {
	return config.PowerUpColors[p]
}
