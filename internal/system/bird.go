// internal/system/bird.go
package system

import (
	"math"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/utils"
)

// BirdSystem двигает птиц по их паттернам полёта и убирает улетевших
// за поле. Под слоу-мо птицы получают уменьшенный шаг времени,
// остальной мир движется как обычно.
type BirdSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewBirdSystem(ecs *entity.ECS, rng *utils.PRNGService) *BirdSystem {
	return &BirdSystem{ecs: ecs, rng: rng}
}

// Update продвигает всех птиц на один шаг.
func (s *BirdSystem) Update(deltaTime float64) {
	dt := deltaTime
	if s.ecs.Session.SlowTimeActive() {
		dt *= config.SlowTimeFactor
	}

	for id, bird := range s.ecs.Birds {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		bird.FlightTime += dt
		bird.WingFrame = int(bird.FlightTime*config.WingAnimationSpeed) % 3

		switch bird.Type {
		case component.BirdAggressive:
			s.stepZigzag(bird, pos, dt)
		case component.BirdElite:
			s.stepElite(bird, pos, dt)
		default:
			s.stepSine(bird, pos, dt)
		}

		if !bird.IsOnScreen(pos.X, s.ecs.Width) {
			s.ecs.RemoveEntity(id)
		}
	}
}

// stepSine — обычный полёт по синусоиде. Бонусная птица качается шире.
func (s *BirdSystem) stepSine(bird *component.Bird, pos *component.Position, dt float64) {
	amp := config.SineAmplitude
	if bird.Type == component.BirdBonus {
		amp *= 1.5
	}
	pos.X += float64(bird.Direction) * bird.Speed() * dt
	pos.Y = bird.BaseY + math.Sin(bird.FlightTime*config.SineFrequency)*amp
}

// stepZigzag — агрессивная птица мечется по высоте.
func (s *BirdSystem) stepZigzag(bird *component.Bird, pos *component.Position, dt float64) {
	pos.X += float64(bird.Direction) * bird.Speed() * dt
	pos.Y = bird.BaseY + math.Sin(bird.FlightTime*config.ZigzagFrequency)*config.ZigzagAmplitude
}

// stepElite — элитная птица уклоняется от приближающихся шаров.
func (s *BirdSystem) stepElite(bird *component.Bird, pos *component.Position, dt float64) {
	if bird.Dodging {
		bird.DodgeTime += dt
		if bird.DodgeTime >= config.DodgeDuration {
			bird.Dodging = false
			bird.DodgeTime = 0
		} else {
			// Рваное движение во время уклонения
			pos.X += float64(bird.Direction)*bird.Speed()*dt*0.7 +
				math.Sin(bird.FlightTime*10)*20*dt
			pos.Y = bird.BaseY + math.Cos(bird.FlightTime*8)*15
			return
		}
	}

	pos.X += float64(bird.Direction) * bird.Speed() * dt
	pos.Y = bird.BaseY + math.Sin(bird.FlightTime*config.SineFrequency)*config.SineAmplitude

	// Шар рядом — сменить высоту и начать уклоняться
	for ballID, ball := range s.ecs.Balls {
		if ball.State == component.BallCaptured || !ball.Launched {
			continue
		}
		bp := s.ecs.Positions[ballID]
		if bp == nil {
			continue
		}
		if math.Hypot(bp.X-pos.X, bp.Y-pos.Y) < config.DodgeDistance {
			bird.Dodging = true
			bird.DodgeTime = 0
			bird.BaseY = utils.Clamp(
				bird.BaseY+s.rng.FloatRange(-40, 40),
				50, s.ecs.Height-200,
			)
			break
		}
	}
}
