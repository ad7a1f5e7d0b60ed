// internal/entity/ecs.go
package entity

import (
	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/types"
)

type ECS struct {
	GameTime float64
	Width    float64
	Height   float64
	NextID   types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Balls         map[types.EntityID]*component.Ball
	Birds         map[types.EntityID]*component.Bird
	Clouds        map[types.EntityID]*component.Cloud
	PowerUps      map[types.EntityID]*component.PowerUp
	Particles     map[types.EntityID]*component.Particle
	FloatingTexts map[types.EntityID]*component.FloatingText

	Session *component.Session
}

func NewECS() *ECS {
	return &ECS{
		Width:         config.ScreenWidth,
		Height:        config.ScreenHeight,
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Balls:         make(map[types.EntityID]*component.Ball),
		Birds:         make(map[types.EntityID]*component.Bird),
		Clouds:        make(map[types.EntityID]*component.Cloud),
		PowerUps:      make(map[types.EntityID]*component.PowerUp),
		Particles:     make(map[types.EntityID]*component.Particle),
		FloatingTexts: make(map[types.EntityID]*component.FloatingText),
		Session:       component.NewSession(),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех карт компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Balls, id)
	delete(ecs.Birds, id)
	delete(ecs.Clouds, id)
	delete(ecs.PowerUps, id)
	delete(ecs.Particles, id)
	delete(ecs.FloatingTexts, id)
}

// ClearTransient удаляет все временные сущности при сбросе игры.
// Облака тоже очищаются: спаунер создаёт их заново.
func (ecs *ECS) ClearTransient() {
	for id := range ecs.Positions {
		ecs.RemoveEntity(id)
	}
	ecs.GameTime = 0
}
