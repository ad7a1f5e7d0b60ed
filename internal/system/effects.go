// internal/system/effects.go
package system

import (
	"image/color"
	"math"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/utils"
)

// EffectSystem — шина обратной связи: всплывающие тексты, частицы,
// тряска экрана. Создаёт эфемерные сущности и старит их каждый тик.
type EffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService

	shakeOffsetX float64
	shakeOffsetY float64
}

func NewEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *EffectSystem {
	return &EffectSystem{ecs: ecs, rng: rng}
}

// AddFloatingText добавляет всплывающий текст.
func (s *EffectSystem) AddFloatingText(x, y float64, text string, clr color.RGBA, fontSize int) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.FloatingTexts[id] = &component.FloatingText{
		Text:     text,
		Color:    clr,
		FontSize: fontSize,
		Life:     config.FloatingTextDuration,
		Duration: config.FloatingTextDuration,
	}
}

// AddFeatherBurst добавляет перья при попадании по птице.
func (s *EffectSystem) AddFeatherBurst(x, y float64) {
	for i := 0; i < 12; i++ {
		angle := s.rng.FloatRange(0, 2*math.Pi)
		speed := s.rng.FloatRange(50, 150)
		vx := math.Cos(angle) * speed
		vy := math.Sin(angle)*speed - s.rng.FloatRange(30, 80) // Лёгкий подброс вверх

		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{
			X: x + s.rng.FloatRange(-10, 10),
			Y: y + s.rng.FloatRange(-10, 10),
		}
		s.ecs.Velocities[id] = &component.Velocity{VX: vx, VY: vy}
		life := s.rng.FloatRange(1.5, 2.5)
		s.ecs.Particles[id] = &component.Particle{
			Color:     config.FeatherColors[s.rng.Intn(len(config.FeatherColors))],
			Size:      float64(2 + s.rng.Intn(3)),
			Life:      life,
			StartLife: 2.0,
		}
	}
}

// AddCloudBurst добавляет клочья облака при пролёте шара сквозь него.
func (s *EffectSystem) AddCloudBurst(x, y float64) {
	for i := 0; i < 8; i++ {
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{
			X: x + s.rng.FloatRange(-10, 10),
			Y: y + s.rng.FloatRange(-10, 10),
		}
		s.ecs.Velocities[id] = &component.Velocity{
			VX: s.rng.FloatRange(-100, 100),
			VY: s.rng.FloatRange(-50, 50),
		}
		s.ecs.Particles[id] = &component.Particle{
			Color:     config.CloudColor,
			Size:      float64(3 + s.rng.Intn(4)),
			Life:      s.rng.FloatRange(0.5, 1.0),
			StartLife: 1.0,
		}
	}
}

// Shake запускает тряску экрана с заданной интенсивностью.
func (s *EffectSystem) Shake(intensity float64) {
	s.ecs.Session.ShakeTimer = config.ScreenShakeDuration
	s.ecs.Session.ShakeIntensity = intensity
}

// ShakeOffset возвращает текущее смещение экрана от тряски.
func (s *EffectSystem) ShakeOffset() (float64, float64) {
	return s.shakeOffsetX, s.shakeOffsetY
}

// Update старит частицы, тексты и тряску.
func (s *EffectSystem) Update(deltaTime float64) {
	for id, p := range s.ecs.Particles {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
		vel.VY += config.ParticleGravity * deltaTime
		vel.VX *= config.ParticleDrag
		p.Life -= deltaTime
		if !p.Alive() {
			s.ecs.RemoveEntity(id)
		}
	}

	for id, t := range s.ecs.FloatingTexts {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos.Y -= config.FloatingTextRiseSpeed * deltaTime
		t.Life -= deltaTime
		if !t.Alive() {
			s.ecs.RemoveEntity(id)
		}
	}

	sess := s.ecs.Session
	if sess.ShakeTimer > 0 {
		sess.ShakeTimer -= deltaTime
		if sess.ShakeTimer > 0 {
			intensity := sess.ShakeIntensity * (sess.ShakeTimer / config.ScreenShakeDuration)
			s.shakeOffsetX = s.rng.FloatRange(-intensity, intensity)
			s.shakeOffsetY = s.rng.FloatRange(-intensity, intensity)
		} else {
			s.shakeOffsetX = 0
			s.shakeOffsetY = 0
		}
	}
}
