// internal/app/game.go
package app

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/event"
	"go-bird-hunter/internal/storage"
	"go-bird-hunter/internal/system"
	"go-bird-hunter/internal/types"
	"go-bird-hunter/internal/ui"
	"go-bird-hunter/internal/utils"
)

// Game связывает ECS, системы и жест рогатки в один игровой мир.
type Game struct {
	ECS        *entity.ECS
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService

	PhysicsSystem   *system.PhysicsSystem
	CollisionSystem *system.CollisionSystem
	BirdSystem      *system.BirdSystem
	SpawnSystem     *system.SpawnSystem
	SessionSystem   *system.SessionSystem
	EffectSystem    *system.EffectSystem
	RenderSystem    *system.RenderSystem
	HUD             *ui.HUD

	store *storage.HighScoreStore

	// Состояние жеста рогатки
	captured     types.EntityID
	hasCaptured  bool
	anchor       mgl64.Vec2
	pointer      mgl64.Vec2
	nextBallTint int
}

// NewGame создаёт игру и подписывает системы на события.
// Сид 0 означает недетерминированный рандом.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	effects := system.NewEffectSystem(ecs, rng)
	sessionSystem := system.NewSessionSystem(ecs, effects, rng)

	g := &Game{
		ECS:             ecs,
		Dispatcher:      dispatcher,
		Rng:             rng,
		PhysicsSystem:   system.NewPhysicsSystem(ecs, dispatcher),
		CollisionSystem: system.NewCollisionSystem(ecs, dispatcher, effects, rng),
		BirdSystem:      system.NewBirdSystem(ecs, rng),
		SpawnSystem:     system.NewSpawnSystem(ecs, rng),
		SessionSystem:   sessionSystem,
		EffectSystem:    effects,
		RenderSystem:    system.NewRenderSystem(ecs),
		HUD:             ui.NewHUD(ecs),
		store:           storage.NewHighScoreStore(config.HighScoreFile),
	}

	dispatcher.Subscribe(event.BirdHit, sessionSystem)
	dispatcher.Subscribe(event.BallLanded, sessionSystem)
	dispatcher.Subscribe(event.PipeEntered, sessionSystem)
	dispatcher.Subscribe(event.WallBounced, sessionSystem)
	dispatcher.Subscribe(event.PowerUpCollected, sessionSystem)
	dispatcher.Subscribe(event.BallLaunched, sessionSystem)

	if hs, err := g.store.Load(); err == nil {
		ecs.Session.HighScore = hs
	}

	g.SpawnSystem.InitClouds()
	return g
}

// Update продвигает мир на один тик. Жест уже обработан снаружи.
func (g *Game) Update(deltaTime float64) {
	g.ECS.GameTime += deltaTime

	g.PhysicsSystem.Update(deltaTime)
	g.BirdSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	g.SessionSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.EffectSystem.Update(deltaTime)
}

// PressAt начинает жест: захват существующего шара или создание нового.
func (g *Game) PressAt(x, y float64) {
	sess := g.ECS.Session
	if sess.GameOver() {
		return
	}
	p := mgl64.Vec2{x, y}

	// Сначала пробуем схватить свободный шар под указателем
	for id, ball := range g.ECS.Balls {
		if ball.State != component.BallFree {
			continue
		}
		pos := g.ECS.Positions[id]
		if pos == nil || !utils.Contains(mgl64.Vec2{pos.X, pos.Y}, ball.Radius, p) {
			continue
		}
		g.captureBall(id, x, y)
		return
	}

	if sess.BallsInFlight >= config.MaxBallsOnScreen {
		g.EffectSystem.AddFloatingText(x, y-20, "Wait for ball to land!", config.WarningRed, 14)
		return
	}
	if sess.Ammo <= 0 {
		return
	}

	// Большой шар действует на все создаваемые шары до сброса игры
	radius := float64(config.BallRadius)
	if sess.BigBallActive {
		radius *= config.BigBallFactor
	}

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Balls[id] = &component.Ball{
		Radius: radius,
		Color:  config.BallColors[g.nextBallTint%len(config.BallColors)],
		State:  component.BallFree,
		Squish: 1,
	}
	g.nextBallTint++
	g.captureBall(id, x, y)
}

func (g *Game) captureBall(id types.EntityID, x, y float64) {
	ball := g.ECS.Balls[id]
	vel := g.ECS.Velocities[id]
	ball.State = component.BallCaptured
	ball.Squish = 1
	vel.VX, vel.VY = 0, 0
	g.captured = id
	g.hasCaptured = true
	g.anchor = mgl64.Vec2{x, y}
	g.pointer = g.anchor
}

// MoveTo тянет захваченный шар за указателем в пределах поля.
func (g *Game) MoveTo(x, y float64) {
	if !g.hasCaptured {
		return
	}
	ball := g.ECS.Balls[g.captured]
	pos := g.ECS.Positions[g.captured]
	if ball == nil || pos == nil {
		g.hasCaptured = false
		return
	}

	x = utils.Clamp(x, ball.Radius, g.ECS.Width-ball.Radius)
	y = utils.Clamp(y, ball.Radius, g.ECS.Height-ball.Radius)
	g.pointer = mgl64.Vec2{x, y}
	pos.X, pos.Y = x, y

	drag := utils.Dist(g.anchor, g.pointer)
	ball.Squish = math.Max(config.SquishMin, 1-0.3*drag/config.SlingshotMaxDrag)
}

// ReleaseAt завершает жест: запуск или отмена при слабом натяжении.
func (g *Game) ReleaseAt(x, y float64) {
	if !g.hasCaptured {
		return
	}
	g.MoveTo(x, y)

	id := g.captured
	ball := g.ECS.Balls[id]
	pos := g.ECS.Positions[id]
	vel := g.ECS.Velocities[id]
	g.hasCaptured = false
	if ball == nil || pos == nil || vel == nil {
		return
	}

	drag := g.anchor.Sub(g.pointer)
	if drag.Len() < config.MinDragDistance {
		ball.State = component.BallFree
		ball.Squish = 1
		return
	}

	power := math.Min(drag.Len()/config.SlingshotMaxDrag, 1)
	launch := utils.SafeNormalize(drag).Mul(power * config.SlingshotMaxForce)
	vel.VX = launch.X()
	vel.VY = launch.Y()
	wasInFlight := ball.Launched // Перехваченный в полёте шар уже учтён и оплачен
	ball.State = component.BallFree
	ball.Squish = 1
	ball.Launched = true
	ball.LaunchPower = power
	ball.WallBounces = 0

	sess := g.ECS.Session
	if !wasInFlight {
		if sess.Ammo > 0 {
			sess.Ammo--
		}
		sess.BallsInFlight++
	}
	sess.ShotsFired++

	g.Dispatcher.Dispatch(event.Event{Type: event.BallLaunched, Data: event.BallLaunchedData{
		X: pos.X, Y: pos.Y, Power: power,
	}})

	if sess.MultiShotArmed {
		sess.MultiShotArmed = false
		g.spawnMultiShotClones(pos, vel, ball)
	}
}

// spawnMultiShotClones добавляет веер клонов вокруг основного шара.
func (g *Game) spawnMultiShotClones(pos *component.Position, vel *component.Velocity, ball *component.Ball) {
	for i := 0; i < config.MultiShotClones; i++ {
		off := (float64(i) - 0.5) * config.MultiShotAngleStep
		sin, cos := math.Sin(off), math.Cos(off)

		id := g.ECS.NewEntity()
		g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
		g.ECS.Velocities[id] = &component.Velocity{
			VX: vel.VX*cos - vel.VY*sin + cos*config.MultiShotNudge,
			VY: vel.VX*sin + vel.VY*cos + sin*config.MultiShotNudge,
		}
		g.ECS.Balls[id] = &component.Ball{
			Radius:      ball.Radius,
			Color:       config.BallColors[g.nextBallTint%len(config.BallColors)],
			State:       component.BallFree,
			Squish:      1,
			Launched:    true,
			LaunchPower: ball.LaunchPower,
		}
		g.nextBallTint++
		g.ECS.Session.BallsInFlight++
	}
}

// DragPower возвращает текущую долю силы натяжения [0, 1].
func (g *Game) DragPower() float64 {
	if !g.hasCaptured {
		return 0
	}
	return math.Min(utils.Dist(g.anchor, g.pointer)/config.SlingshotMaxDrag, 1)
}

// TrajectoryPreview строит прогноз полёта захваченного шара.
// Чистая функция от текущего натяжения: мир не меняется.
func (g *Game) TrajectoryPreview() []mgl64.Vec2 {
	if !g.hasCaptured {
		return nil
	}
	ball := g.ECS.Balls[g.captured]
	pos := g.ECS.Positions[g.captured]
	if ball == nil || pos == nil {
		return nil
	}
	drag := g.anchor.Sub(g.pointer)
	if drag.Len() < config.MinDragDistance {
		return nil
	}

	power := math.Min(drag.Len()/config.SlingshotMaxDrag, 1)
	v := utils.SafeNormalize(drag).Mul(power * config.SlingshotMaxForce)
	at := mgl64.Vec2{pos.X, pos.Y}

	const step = 0.05
	points := make([]mgl64.Vec2, 0, 20)
	for i := 0; i < 20; i++ {
		v = mgl64.Vec2{v.X() * config.AirFriction, (v.Y() + config.Gravity*step) * config.AirFriction}
		at = at.Add(v.Mul(step))
		if at.Y() > g.ECS.Height-ball.Radius {
			break
		}
		points = append(points, at)
	}
	return points
}

// Reset начинает новую сессию, сохранив рекорд на диск.
func (g *Game) Reset() {
	sess := g.ECS.Session
	prevHigh := sess.HighScore

	g.hasCaptured = false
	g.ECS.ClearTransient()
	sess.Reset()
	if sess.HighScore > prevHigh {
		if err := g.store.Save(sess.HighScore); err != nil {
			log.Printf("Не удалось сохранить рекорд: %v", err)
		}
	}
	g.SpawnSystem.Reset()
	g.SpawnSystem.InitClouds()
}

// HandleResize обновляет размеры поля и возвращает шары в его пределы.
func (g *Game) HandleResize(width, height int) {
	if width < config.MinScreenSize {
		width = config.MinScreenSize
	}
	if height < config.MinScreenSize {
		height = config.MinScreenSize
	}
	g.ECS.Width = float64(width)
	g.ECS.Height = float64(height)

	for id, ball := range g.ECS.Balls {
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		pos.X = utils.Clamp(pos.X, ball.Radius, g.ECS.Width-ball.Radius)
		pos.Y = utils.Clamp(pos.Y, ball.Radius, g.ECS.Height-ball.Radius)
	}
}

// DrawWorld рисует игровой мир без HUD: фон, сущности, рогатку.
func (g *Game) DrawWorld(screen *ebiten.Image) {
	g.RenderSystem.DrawBackground(screen)
	g.RenderSystem.DrawEntities(screen)

	if g.hasCaptured {
		if pos := g.ECS.Positions[g.captured]; pos != nil {
			at := mgl64.Vec2{pos.X, pos.Y}
			g.RenderSystem.DrawSlingshot(screen, g.anchor, at)
			if points := g.TrajectoryPreview(); points != nil {
				g.RenderSystem.DrawTrajectory(screen, points)
			}
			g.RenderSystem.DrawPowerMeter(screen, at, g.DragPower())
		}
	}
}

// DrawHUD рисует интерфейс поверх мира, без тряски.
func (g *Game) DrawHUD(screen *ebiten.Image) {
	g.HUD.Draw(screen)
}
