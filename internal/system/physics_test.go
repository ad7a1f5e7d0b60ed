package system

import (
	"math"
	"testing"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/event"
	"go-bird-hunter/internal/types"
)

// eventRecorder копит все полученные события для проверок.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *eventRecorder) last(t event.EventType) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

func newPhysicsFixture() (*entity.ECS, *PhysicsSystem, *eventRecorder) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.BallLanded, rec)
	dispatcher.Subscribe(event.WallBounced, rec)
	dispatcher.Subscribe(event.PipeEntered, rec)
	return ecs, NewPhysicsSystem(ecs, dispatcher), rec
}

func addBall(ecs *entity.ECS, x, y, vx, vy float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{VX: vx, VY: vy}
	ecs.Balls[id] = &component.Ball{Radius: config.BallRadius, Squish: 1}
	return id
}

func TestGravityAndDrag(t *testing.T) {
	ecs, physics, _ := newPhysicsFixture()
	id := addBall(ecs, 400, 100, 100, 0)

	physics.Update(0.1)

	vel := ecs.Velocities[id]
	if vel.VY <= 0 {
		t.Fatalf("VY = %f, want positive after gravity", vel.VY)
	}
	if vel.VX >= 100 {
		t.Fatalf("VX = %f, want reduced by air drag", vel.VX)
	}
	if ecs.Positions[id].Y <= 100 {
		t.Fatalf("Y = %f, ball must move down", ecs.Positions[id].Y)
	}
}

func TestCapturedBallNotIntegrated(t *testing.T) {
	ecs, physics, _ := newPhysicsFixture()
	id := addBall(ecs, 400, 300, 500, 500)
	ecs.Balls[id].State = component.BallCaptured

	physics.Update(0.1)

	pos := ecs.Positions[id]
	if pos.X != 400 || pos.Y != 300 {
		t.Fatalf("captured ball moved to (%f, %f)", pos.X, pos.Y)
	}
}

func TestSideWallBounceCountsAndEmits(t *testing.T) {
	ecs, physics, rec := newPhysicsFixture()
	id := addBall(ecs, 20, 300, -200, 0)
	ecs.Balls[id].Launched = true

	physics.Update(0.01)

	ball := ecs.Balls[id]
	if ball.WallBounces != 1 {
		t.Fatalf("WallBounces = %d, want 1", ball.WallBounces)
	}
	vel := ecs.Velocities[id]
	if vel.VX <= 0 {
		t.Fatalf("VX = %f, want reflected to positive", vel.VX)
	}
	// Отскок гасит скорость
	if vel.VX > 200*config.BounceDampening+1 {
		t.Fatalf("VX = %f, want dampened below %f", vel.VX, 200*config.BounceDampening)
	}
	if rec.count(event.WallBounced) != 1 {
		t.Fatalf("WallBounced events = %d, want 1", rec.count(event.WallBounced))
	}
}

func TestWallBounceStreakResetsOnWallFreeFrame(t *testing.T) {
	ecs, physics, _ := newPhysicsFixture()
	id := addBall(ecs, 20, 300, -200, -800) // Вверх, чтобы не коснуться пола
	ecs.Balls[id].Launched = true

	physics.Update(0.01)
	if ecs.Balls[id].WallBounces != 1 {
		t.Fatalf("WallBounces = %d, want 1 after the hit", ecs.Balls[id].WallBounces)
	}

	// Кадр без касания стены обнуляет серию
	physics.Update(0.01)
	if ecs.Balls[id].WallBounces != 0 {
		t.Fatalf("WallBounces = %d, want 0 after a wall-free frame", ecs.Balls[id].WallBounces)
	}
}

func TestPipeEntryDirectAfterOldWallBounce(t *testing.T) {
	ecs, physics, rec := newPhysicsFixture()
	// Шар когда-то задел стену, но в трубу летит по чистой траектории
	id := addBall(ecs, 600, 490, 1300, 0)
	ball := ecs.Balls[id]
	ball.Launched = true
	ball.WallBounces = 1

	physics.Update(0.1)

	e, ok := rec.last(event.PipeEntered)
	if !ok {
		t.Fatal("PipeEntered not emitted")
	}
	if !e.Data.(event.PipeEnteredData).DirectShot {
		t.Fatal("clean flight into the pipe must count as direct despite an old bounce")
	}
}

func TestRestingLaunchedBallLandsAndIsRemoved(t *testing.T) {
	ecs, physics, rec := newPhysicsFixture()
	id := addBall(ecs, 400, ecs.Height-config.BallRadius, 5, 0)
	ecs.Balls[id].Launched = true

	physics.Update(0.01)

	if _, alive := ecs.Balls[id]; alive {
		t.Fatal("resting launched ball must be removed")
	}
	if rec.count(event.BallLanded) != 1 {
		t.Fatalf("BallLanded events = %d, want 1", rec.count(event.BallLanded))
	}
}

func TestUnlaunchedBallRestsWithoutLanding(t *testing.T) {
	ecs, physics, rec := newPhysicsFixture()
	addBall(ecs, 400, ecs.Height-config.BallRadius, 5, 0)

	physics.Update(0.01)

	if rec.count(event.BallLanded) != 0 {
		t.Fatal("unlaunched ball must not emit BallLanded")
	}
	if len(ecs.Balls) != 1 {
		t.Fatal("unlaunched ball must stay on field")
	}
}

func TestPipeEntryRemovesBall(t *testing.T) {
	ecs, physics, rec := newPhysicsFixture()
	// Горловина трубы при 800x600: x в [700, 760], y в [480, 510]
	id := addBall(ecs, 730, 490, 10, 10)
	ecs.Balls[id].Launched = true

	physics.Update(0.001)

	if _, alive := ecs.Balls[id]; alive {
		t.Fatal("ball entering pipe mouth must be removed")
	}
	e, ok := rec.last(event.PipeEntered)
	if !ok {
		t.Fatal("PipeEntered not emitted")
	}
	if !e.Data.(event.PipeEnteredData).DirectShot {
		t.Fatal("no wall bounces, shot must count as direct")
	}
}

func TestWindPushesBall(t *testing.T) {
	ecs, physics, _ := newPhysicsFixture()
	id := addBall(ecs, 400, 100, 0, 0)
	ecs.Session.WindStrength = 100
	ecs.Session.WindDirection = 0 // Строго направо

	physics.Update(0.1)

	if ecs.Velocities[id].VX <= 0 {
		t.Fatalf("VX = %f, want wind push to the right", ecs.Velocities[id].VX)
	}
}

func TestMagnetPullsTowardNearestBird(t *testing.T) {
	ecs, physics, _ := newPhysicsFixture()
	id := addBall(ecs, 400, 300, 0, -80) // Вверх, чтобы не мешал пол
	ecs.Session.MagnetLeft = config.MagnetDuration

	birdID := ecs.NewEntity()
	ecs.Positions[birdID] = &component.Position{X: 500, Y: 300}
	ecs.Birds[birdID] = &component.Bird{Type: component.BirdCommon, Direction: 1, BaseY: 300}

	physics.Update(0.05)

	if ecs.Velocities[id].VX <= 0 {
		t.Fatalf("VX = %f, want pull toward bird on the right", ecs.Velocities[id].VX)
	}
}

func TestCloudWrapsHorizontally(t *testing.T) {
	ecs, physics, _ := newPhysicsFixture()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: ecs.Width - 1, Y: 100}
	ecs.Clouds[id] = &component.Cloud{Width: 100, Height: 50, VX: 200}

	physics.Update(0.1)

	pos := ecs.Positions[id]
	if pos.X > 0 {
		t.Fatalf("X = %f, cloud must wrap to the left edge", pos.X)
	}
	if math.IsNaN(pos.X) {
		t.Fatal("cloud position is NaN")
	}
}
