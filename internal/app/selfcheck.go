// internal/app/selfcheck.go
package app

import (
	"fmt"
	"math"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
)

// SelfCheck прогоняет детерминированную партию базовых проверок
// физики и столкновений без окна. Возвращает первую найденную ошибку.
func SelfCheck() error {
	if err := checkGravity(); err != nil {
		return err
	}
	if err := checkBallCollision(); err != nil {
		return err
	}
	if err := checkBirdStrike(); err != nil {
		return err
	}
	return nil
}

func checkGravity() error {
	g := NewGame(42)
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: 400, Y: 100}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Balls[id] = &component.Ball{Radius: config.BallRadius, Squish: 1}

	g.PhysicsSystem.Update(0.1)

	vel := g.ECS.Velocities[id]
	if vel == nil || vel.VY <= 0 {
		return fmt.Errorf("гравитация: шар не ускоряется вниз")
	}
	pos := g.ECS.Positions[id]
	if pos == nil || pos.Y <= 100 {
		return fmt.Errorf("гравитация: шар не сместился вниз, y=%v", pos)
	}
	return nil
}

func checkBallCollision() error {
	g := NewGame(42)

	a := g.ECS.NewEntity()
	g.ECS.Positions[a] = &component.Position{X: 100, Y: 300}
	g.ECS.Velocities[a] = &component.Velocity{VX: 200}
	g.ECS.Balls[a] = &component.Ball{Radius: config.BallRadius, Squish: 1}

	b := g.ECS.NewEntity()
	g.ECS.Positions[b] = &component.Position{X: 140, Y: 300}
	g.ECS.Velocities[b] = &component.Velocity{VX: -200}
	g.ECS.Balls[b] = &component.Ball{Radius: config.BallRadius, Squish: 1}

	g.CollisionSystem.Update(0)

	pa, pb := g.ECS.Positions[a], g.ECS.Positions[b]
	dist := math.Hypot(pb.X-pa.X, pb.Y-pa.Y)
	if dist < 2*config.BallRadius {
		return fmt.Errorf("столкновение: шары не разделены, dist=%.2f", dist)
	}
	va, vb := g.ECS.Velocities[a], g.ECS.Velocities[b]
	if va.VX >= 0 || vb.VX <= 0 {
		return fmt.Errorf("столкновение: скорости не разлетаются, va=%.1f vb=%.1f", va.VX, vb.VX)
	}
	return nil
}

func checkBirdStrike() error {
	g := NewGame(42)

	ball := g.ECS.NewEntity()
	g.ECS.Positions[ball] = &component.Position{X: 400, Y: 200}
	g.ECS.Velocities[ball] = &component.Velocity{VX: 500}
	g.ECS.Balls[ball] = &component.Ball{Radius: config.BallRadius, Squish: 1, Launched: true}

	bird := g.ECS.NewEntity()
	g.ECS.Positions[bird] = &component.Position{X: 420, Y: 200}
	g.ECS.Birds[bird] = &component.Bird{Type: component.BirdCommon, Direction: -1, BaseY: 200}

	g.CollisionSystem.Update(0)

	if _, alive := g.ECS.Birds[bird]; alive {
		return fmt.Errorf("поражение: птица осталась на поле")
	}
	if g.ECS.Session.Score <= 0 {
		return fmt.Errorf("поражение: очки не начислены")
	}
	return nil
}
