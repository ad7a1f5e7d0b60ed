// internal/system/physics.go
package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/event"
	"go-bird-hunter/internal/types"
	"go-bird-hunter/internal/utils"
)

// PhysicsSystem интегрирует движение шаров и облаков: гравитация,
// сопротивление воздуха, ветер, магнит, границы поля. Захваченные
// рогаткой шары не интегрируются. Сам система ничего не начисляет —
// о посадках, отскоках и трубе она сообщает событиями.
type PhysicsSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewPhysicsSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs, dispatcher: dispatcher}
}

// Update выполняет один шаг интеграции.
func (s *PhysicsSystem) Update(deltaTime float64) {
	for id, ball := range s.ecs.Balls {
		if ball.State == component.BallCaptured {
			continue
		}
		s.stepBall(id, ball, deltaTime)
	}

	for id, cloud := range s.ecs.Clouds {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		pos.X += cloud.VX * deltaTime
		// Горизонтальное оборачивание: облако не уничтожается
		if pos.X > s.ecs.Width {
			pos.X = -cloud.Width
		} else if pos.X+cloud.Width < 0 {
			pos.X = s.ecs.Width
		}
	}
}

func (s *PhysicsSystem) stepBall(id types.EntityID, ball *component.Ball, deltaTime float64) {
	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]
	if pos == nil || vel == nil {
		return
	}
	sess := s.ecs.Session

	// Силы
	vel.VY += config.Gravity * deltaTime
	vel.VX *= config.AirFriction
	vel.VY *= config.AirFriction

	if sess.WindStrength > 0 {
		vel.VX += math.Cos(sess.WindDirection) * sess.WindStrength * deltaTime
		vel.VY += math.Sin(sess.WindDirection) * sess.WindStrength * deltaTime
	}

	if sess.MagnetActive() {
		s.applyMagnet(pos, vel, deltaTime)
	}

	// Интеграция
	pos.X += vel.VX * deltaTime
	pos.Y += vel.VY * deltaTime

	r := ball.Radius
	floorY := s.ecs.Height - r
	onFloor := false

	// Пол
	if pos.Y >= floorY {
		pos.Y = floorY
		vel.VY = 0
		vel.VX *= config.GroundFriction
		onFloor = true
	}

	// Потолок
	if pos.Y-r < 0 {
		pos.Y = r
		vel.VY = math.Abs(vel.VY) * config.BounceDampening
	}

	// Боковые стены: счётчик последовательных отскоков
	bounced := false
	if pos.X-r < 0 {
		pos.X = r
		vel.VX = math.Abs(vel.VX) * config.BounceDampening
		bounced = true
	} else if pos.X+r > s.ecs.Width {
		pos.X = s.ecs.Width - r
		vel.VX = -math.Abs(vel.VX) * config.BounceDampening
		bounced = true
	}
	// Серия живёт только пока шар касается стены каждый кадр
	if bounced {
		ball.WallBounces++
		s.dispatcher.Dispatch(event.Event{Type: event.WallBounced, Data: event.WallBouncedData{
			X: pos.X, Y: pos.Y, Bounces: ball.WallBounces,
		}})
	} else {
		ball.WallBounces = 0
	}

	// Труба: шар влетел в горловину
	if s.inPipeMouth(pos.X, pos.Y) {
		direct := ball.WallBounces == 0
		s.ecs.RemoveEntity(id)
		s.dispatcher.Dispatch(event.Event{Type: event.PipeEntered, Data: event.PipeEnteredData{
			X: pos.X, Y: pos.Y, DirectShot: direct,
		}})
		return
	}

	// Покой: запущенный шар лёг на пол и почти остановился
	if ball.Launched && onFloor &&
		math.Abs(vel.VX) < config.RestSpeedThreshold &&
		math.Abs(vel.VY) < config.RestSpeedThreshold {
		x, y := pos.X, pos.Y
		s.ecs.RemoveEntity(id)
		s.dispatcher.Dispatch(event.Event{Type: event.BallLanded, Data: event.BallLandedData{X: x, Y: y}})
	}
}

// applyMagnet тянет шар к ближайшей птице в радиусе действия магнита.
func (s *PhysicsSystem) applyMagnet(pos *component.Position, vel *component.Velocity, deltaTime float64) {
	ballAt := mgl64.Vec2{pos.X, pos.Y}
	var nearest mgl64.Vec2
	nearestDist := config.MagnetRadius
	found := false

	for birdID := range s.ecs.Birds {
		bp := s.ecs.Positions[birdID]
		if bp == nil {
			continue
		}
		at := mgl64.Vec2{bp.X, bp.Y}
		if d := at.Sub(ballAt).Len(); d < nearestDist {
			nearestDist = d
			nearest = at
			found = true
		}
	}
	if !found {
		return
	}

	pull := utils.SafeNormalize(nearest.Sub(ballAt)).Mul(config.MagnetForce * deltaTime)
	vel.VX += pull.X()
	vel.VY += pull.Y()
}

// inPipeMouth проверяет попадание точки в горловину трубы.
func (s *PhysicsSystem) inPipeMouth(x, y float64) bool {
	px := s.ecs.Width - config.PipeOffsetX
	py := s.ecs.Height - config.PipeOffsetY
	return x >= px && x <= px+config.PipeWidth &&
		y >= py && y <= py+config.PipeMouthHeight
}
