// internal/system/collision.go
package system

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/event"
	"go-bird-hunter/internal/types"
	"go-bird-hunter/internal/utils"
)

// CollisionSystem разрешает столкновения шар-шар и обнаруживает
// взаимодействия шара с птицами, облаками и бонусами. Экономику
// не трогает — поражённые цели сообщаются событиями.
type CollisionSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	effects    *EffectSystem
	rng        *utils.PRNGService
}

func NewCollisionSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, effects *EffectSystem, rng *utils.PRNGService) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, dispatcher: dispatcher, effects: effects, rng: rng}
}

// BallsOverlap — пересекаются ли два круга.
func BallsOverlap(a, b mgl64.Vec2, ra, rb float64) bool {
	return utils.Dist(a, b) < ra+rb
}

// Update выполняет один проход обнаружения и разрешения столкновений.
func (s *CollisionSystem) Update(deltaTime float64) {
	s.resolveBallPairs()
	s.checkClouds()
	s.checkBirds()
	s.checkPowerUps()
}

// resolveBallPairs разрешает упругие столкновения свободных шаров.
// Пары обходятся по возрастанию ID для детерминизма.
func (s *CollisionSystem) resolveBallPairs() {
	ids := make([]types.EntityID, 0, len(s.ecs.Balls))
	for id, ball := range s.ecs.Balls {
		if ball.State == component.BallCaptured {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			s.resolvePair(ids[i], ids[j])
		}
	}
}

func (s *CollisionSystem) resolvePair(idA, idB types.EntityID) {
	ballA, ballB := s.ecs.Balls[idA], s.ecs.Balls[idB]
	posA, posB := s.ecs.Positions[idA], s.ecs.Positions[idB]
	velA, velB := s.ecs.Velocities[idA], s.ecs.Velocities[idB]
	if ballA == nil || ballB == nil || posA == nil || posB == nil || velA == nil || velB == nil {
		return
	}

	delta := mgl64.Vec2{posB.X - posA.X, posB.Y - posA.Y}
	dist := delta.Len()
	combined := ballA.Radius + ballB.Radius
	if dist >= combined {
		return
	}

	var normal mgl64.Vec2
	if dist == 0 {
		// Шары точно друг на друге: направление разделения случайно
		angle := s.rng.FloatRange(0, 2*math.Pi)
		normal = mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
	} else {
		normal = delta.Mul(1 / dist)
	}

	// Разделение, чтобы шары не слипались
	push := (combined - dist + config.MinCollisionGap) * 0.5
	posA.X -= normal.X() * push
	posA.Y -= normal.Y() * push
	posB.X += normal.X() * push
	posB.Y += normal.Y() * push

	// Импульс вдоль нормали для равных масс
	dvn := (velA.VX-velB.VX)*normal.X() + (velA.VY-velB.VY)*normal.Y()
	if dvn <= 0 {
		return // Уже расходятся
	}
	impulse := dvn * config.CollisionDampening
	velA.VX -= normal.X() * impulse
	velA.VY -= normal.Y() * impulse
	velB.VX += normal.X() * impulse
	velB.VY += normal.Y() * impulse
}

// checkClouds гасит скорость шаров внутри облаков.
func (s *CollisionSystem) checkClouds() {
	for ballID, ball := range s.ecs.Balls {
		if ball.State == component.BallCaptured {
			continue
		}
		pos := s.ecs.Positions[ballID]
		vel := s.ecs.Velocities[ballID]
		if pos == nil || vel == nil {
			continue
		}
		for cloudID, cloud := range s.ecs.Clouds {
			cp := s.ecs.Positions[cloudID]
			if cp == nil || !cloud.ContainsPoint(cp.X, cp.Y, pos.X, pos.Y) {
				continue
			}
			vel.VX *= config.CloudDampeningX
			vel.VY *= config.CloudDampeningY
			if vel.Speed() > config.MinStrikeSpeed {
				s.effects.AddCloudBurst(pos.X, pos.Y)
			}
		}
	}
}

// checkBirds обнаруживает поражение птиц быстрыми шарами.
// Медленный шар птицу не сбивает. За один тик шар поражает
// не больше одной птицы — первую найденную.
func (s *CollisionSystem) checkBirds() {
	for ballID, ball := range s.ecs.Balls {
		if ball.State == component.BallCaptured {
			continue
		}
		pos := s.ecs.Positions[ballID]
		vel := s.ecs.Velocities[ballID]
		if pos == nil || vel == nil || vel.Speed() < config.MinStrikeSpeed {
			continue
		}
		ballAt := mgl64.Vec2{pos.X, pos.Y}

		for birdID, bird := range s.ecs.Birds {
			bp := s.ecs.Positions[birdID]
			if bp == nil {
				continue
			}
			dist := utils.Dist(ballAt, mgl64.Vec2{bp.X, bp.Y})
			combined := ball.Radius + config.BirdCollisionRadius
			if dist >= combined {
				continue
			}

			hitX, hitY := bp.X, bp.Y
			birdType := int(bird.Type)
			s.ecs.RemoveEntity(birdID)

			vel.VX *= config.StrikeSlowdown
			vel.VY *= config.StrikeSlowdown

			s.dispatcher.Dispatch(event.Event{Type: event.BirdHit, Data: event.BirdHitData{
				BirdType:       birdType,
				X:              hitX,
				Y:              hitY,
				Distance:       dist,
				CombinedRadius: combined,
			}})
			break
		}
	}
}

// checkPowerUps обнаруживает подбор бонусов шаром.
func (s *CollisionSystem) checkPowerUps() {
	now := s.ecs.GameTime
	for ballID, ball := range s.ecs.Balls {
		if ball.State == component.BallCaptured {
			continue
		}
		pos := s.ecs.Positions[ballID]
		if pos == nil {
			continue
		}
		ballAt := mgl64.Vec2{pos.X, pos.Y}

		for puID, pu := range s.ecs.PowerUps {
			pp := s.ecs.Positions[puID]
			if pp == nil || !pu.Active(now) {
				continue
			}
			if utils.Dist(ballAt, mgl64.Vec2{pp.X, pp.Y}) >= ball.Radius+config.PowerUpPickupMargin {
				continue
			}
			pu.Collected = true
			x, y := pp.X, pp.Y
			powerType := int(pu.Type)
			s.ecs.RemoveEntity(puID)
			s.dispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpCollectedData{
				PowerType: powerType,
				X:         x,
				Y:         y,
			}})
		}
	}
}
