// internal/system/spawn.go
package system

import (
	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/utils"
)

// SpawnSystem создаёт птиц, бонусы и облака по таймерам обратного отсчёта.
type SpawnSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService

	birdTimer    float64
	powerUpTimer float64
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService) *SpawnSystem {
	s := &SpawnSystem{ecs: ecs, rng: rng}
	s.Reset()
	return s
}

// Reset перезаряжает таймеры спауна.
func (s *SpawnSystem) Reset() {
	s.birdTimer = s.rng.FloatRange(config.BirdSpawnMin, config.BirdSpawnMax)
	s.powerUpTimer = s.rng.FloatRange(config.PowerUpSpawnMin, config.PowerUpSpawnMax)
}

// InitClouds заселяет поле начальными облаками.
func (s *SpawnSystem) InitClouds() {
	for i := 0; i < config.CloudCount; i++ {
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{
			X: s.rng.FloatRange(100, s.ecs.Width-200),
			Y: s.rng.FloatRange(50, 200),
		}
		s.ecs.Clouds[id] = &component.Cloud{
			Width:  s.rng.FloatRange(80, 120),
			Height: s.rng.FloatRange(40, 60),
			VX:     s.rng.FloatRange(-50, 50),
		}
	}
}

// Update тикает таймеры и спаунит по их истечении.
func (s *SpawnSystem) Update(deltaTime float64) {
	s.birdTimer -= deltaTime
	if s.birdTimer <= 0 {
		s.spawnBird()
		s.birdTimer = s.rng.FloatRange(config.BirdSpawnMin, config.BirdSpawnMax)
	}

	s.powerUpTimer -= deltaTime
	if s.powerUpTimer <= 0 {
		s.spawnPowerUp()
		s.powerUpTimer = s.rng.FloatRange(config.PowerUpSpawnMin, config.PowerUpSpawnMax)
	}
}

func (s *SpawnSystem) spawnBird() {
	birdType := component.BirdType(s.rng.ChooseWeighted(config.BirdSpawnWeights))

	// С ростом волн элитные птицы появляются чаще
	wave := s.ecs.Session.Wave
	if wave > 2 {
		eliteChance := 2 * wave
		if eliteChance > 20 {
			eliteChance = 20
		}
		if s.rng.Intn(100)+1 > 100-eliteChance {
			birdType = component.BirdElite
		}
	}

	maxAltitude := config.FlightHeightMax
	if h := s.ecs.Height / 3; h < maxAltitude {
		maxAltitude = h
	}
	baseY := s.rng.FloatRange(config.FlightHeightMin, maxAltitude)
	switch birdType {
	case component.BirdElite:
		baseY -= 50
		if baseY < 50 {
			baseY = 50
		}
	case component.BirdAggressive:
		baseY += 30
		if max := s.ecs.Height / 2; baseY > max {
			baseY = max
		}
	}

	direction := 1
	x := -config.BirdWidth
	if s.rng.Intn(2) == 0 {
		direction = -1
		x = s.ecs.Width + config.BirdWidth
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: baseY}
	s.ecs.Birds[id] = &component.Bird{
		Type:      birdType,
		Direction: direction,
		BaseY:     baseY,
	}
}

func (s *SpawnSystem) spawnPowerUp() {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: s.rng.FloatRange(100, s.ecs.Width-100),
		Y: s.rng.FloatRange(100, 250),
	}
	s.ecs.PowerUps[id] = &component.PowerUp{
		Type:      component.PowerUpType(s.rng.Intn(config.PowerUpTypeCount)),
		SpawnTime: s.ecs.GameTime,
	}
}
