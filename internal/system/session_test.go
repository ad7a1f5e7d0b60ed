package system

import (
	"math"
	"testing"

	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/event"
	"go-bird-hunter/internal/utils"
)

func newSessionFixture() (*entity.ECS, *SessionSystem) {
	ecs := entity.NewECS()
	rng := utils.NewPRNGService(42)
	effects := NewEffectSystem(ecs, rng)
	return ecs, NewSessionSystem(ecs, effects, rng)
}

func hitEvent(birdType int, distance float64) event.Event {
	return event.Event{Type: event.BirdHit, Data: event.BirdHitData{
		BirdType:       birdType,
		X:              400,
		Y:              200,
		Distance:       distance,
		CombinedRadius: config.BallRadius + config.BirdCollisionRadius,
	}}
}

func TestBirdHitScoresAndRewardsAmmo(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session

	// Бонусная птица, без точного попадания
	session.OnEvent(hitEvent(config.BirdTypeBonus, 30))

	if sess.Score != config.BirdPoints[config.BirdTypeBonus] {
		t.Fatalf("Score = %d, want %d", sess.Score, config.BirdPoints[config.BirdTypeBonus])
	}
	if sess.Ammo != config.StartAmmo+1 {
		t.Fatalf("Ammo = %d, want %d", sess.Ammo, config.StartAmmo+1)
	}
	if sess.ComboCount != 1 {
		t.Fatalf("ComboCount = %d, want 1", sess.ComboCount)
	}
	if sess.ComboTimer != config.ComboWindow {
		t.Fatalf("ComboTimer = %f, want %f", sess.ComboTimer, config.ComboWindow)
	}
}

func TestPrecisionHitDoublesPoints(t *testing.T) {
	ecs, session := newSessionFixture()

	// Расстояние меньше половины общего радиуса
	session.OnEvent(hitEvent(config.BirdTypeCommon, 10))

	if ecs.Session.Score != 2*config.BirdPoints[config.BirdTypeCommon] {
		t.Fatalf("Score = %d, want doubled %d", ecs.Session.Score, 2*config.BirdPoints[config.BirdTypeCommon])
	}
}

func TestComboMultipliesPoints(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session
	sess.ComboCount = 2 // Уже две птицы в серии

	session.OnEvent(hitEvent(config.BirdTypeBonus, 30))

	// 5 очков * (1 + 0.5*2) = 10
	if sess.Score != 10 {
		t.Fatalf("Score = %d, want 10 with combo x2", sess.Score)
	}
	if sess.ComboCount != 3 {
		t.Fatalf("ComboCount = %d, want 3", sess.ComboCount)
	}
}

func TestAmmoClampedAtMax(t *testing.T) {
	ecs, session := newSessionFixture()
	ecs.Session.Ammo = config.MaxAmmo

	session.OnEvent(hitEvent(config.BirdTypeElite, 30))

	if ecs.Session.Ammo != config.MaxAmmo {
		t.Fatalf("Ammo = %d, want clamped at %d", ecs.Session.Ammo, config.MaxAmmo)
	}
}

func TestComboExpires(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session
	sess.ComboCount = 3
	sess.ComboTimer = 0.1

	session.Update(0.2)

	if sess.ComboCount != 0 {
		t.Fatalf("ComboCount = %d, want 0 after window expiry", sess.ComboCount)
	}
}

func TestMissStreakPenalty(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session
	ecs.GameTime = 100 // Давно не было попаданий
	sess.BallsInFlight = 3

	land := event.Event{Type: event.BallLanded, Data: event.BallLandedData{X: 400, Y: 575}}
	session.OnEvent(land)
	if sess.MissCount != 1 {
		t.Fatalf("MissCount = %d, want 1", sess.MissCount)
	}
	session.OnEvent(land)
	if sess.MissCount != 2 {
		t.Fatalf("MissCount = %d, want 2", sess.MissCount)
	}
	session.OnEvent(land)

	if sess.Ammo != config.StartAmmo-1 {
		t.Fatalf("Ammo = %d, want %d after third miss", sess.Ammo, config.StartAmmo-1)
	}
	if sess.MissCount != 0 {
		t.Fatalf("MissCount = %d, want reset to 0 after penalty", sess.MissCount)
	}
	if sess.BallsInFlight != 0 {
		t.Fatalf("BallsInFlight = %d, want 0", sess.BallsInFlight)
	}
}

func TestRecentHitForgivesLanding(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session
	ecs.GameTime = 10
	sess.LastHitTime = 9 // Попадание секунду назад
	sess.BallsInFlight = 1

	session.OnEvent(event.Event{Type: event.BallLanded, Data: event.BallLandedData{X: 400, Y: 575}})

	if sess.MissCount != 0 {
		t.Fatalf("MissCount = %d, landing within grace window must not count", sess.MissCount)
	}
}

func TestPipeEntryScores(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session
	sess.BallsInFlight = 2

	session.OnEvent(event.Event{Type: event.PipeEntered, Data: event.PipeEnteredData{
		X: 730, Y: 490, DirectShot: false,
	}})
	if sess.Score != config.PipeEntryPoints {
		t.Fatalf("Score = %d, want %d for a bounced entry", sess.Score, config.PipeEntryPoints)
	}

	// Прямой выстрел идёт по повышенной ставке, а не суммой
	session.OnEvent(event.Event{Type: event.PipeEntered, Data: event.PipeEnteredData{
		X: 730, Y: 490, DirectShot: true,
	}})
	want := config.PipeEntryPoints + config.PipeDirectBonus
	if sess.Score != want {
		t.Fatalf("Score = %d, want %d", sess.Score, want)
	}

	if sess.BallsInFlight != 0 {
		t.Fatalf("BallsInFlight = %d, want 0", sess.BallsInFlight)
	}
	if sess.MissCount != 0 {
		t.Fatal("pipe entry must not count as a miss")
	}
}

func TestWallRiderBonus(t *testing.T) {
	ecs, session := newSessionFixture()

	session.OnEvent(event.Event{Type: event.WallBounced, Data: event.WallBouncedData{Bounces: 2}})
	if ecs.Session.Score != 0 {
		t.Fatal("two bounces must not score")
	}
	session.OnEvent(event.Event{Type: event.WallBounced, Data: event.WallBouncedData{Bounces: config.WallRiderAt}})
	if ecs.Session.Score != config.WallRiderPoints {
		t.Fatalf("Score = %d, want %d", ecs.Session.Score, config.WallRiderPoints)
	}
}

func TestPowerUpActivation(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session

	activate := func(powerType int) {
		session.OnEvent(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpCollectedData{PowerType: powerType}})
	}

	activate(config.PowerUpMultiShot)
	if !sess.MultiShotArmed {
		t.Fatal("MultiShot not armed")
	}
	activate(config.PowerUpSlowTime)
	if sess.SlowTimeLeft != config.SlowTimeDuration {
		t.Fatalf("SlowTimeLeft = %f, want %f", sess.SlowTimeLeft, config.SlowTimeDuration)
	}
	activate(config.PowerUpBigBall)
	if !sess.BigBallActive {
		t.Fatal("BigBall not active")
	}
	activate(config.PowerUpMagnet)
	if !sess.MagnetActive() {
		t.Fatal("Magnet not active")
	}
}

func TestWaveAdvances(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session
	sess.WaveElapsed = config.WaveDuration - 0.1
	sess.WindTimer = 100 // Чтобы ветер не менялся в этом тесте

	session.Update(0.2)

	if sess.Wave != 2 {
		t.Fatalf("Wave = %d, want 2", sess.Wave)
	}
	if sess.WaveElapsed >= config.WaveDuration {
		t.Fatalf("WaveElapsed = %f, want rolled over", sess.WaveElapsed)
	}
}

func TestWindChangesOnTimer(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session
	sess.WindTimer = 0.1

	session.Update(0.2)

	if sess.WindTimer < config.WindChangeMin || sess.WindTimer >= config.WindChangeMax {
		t.Fatalf("WindTimer = %f, want within [%f, %f)", sess.WindTimer, config.WindChangeMin, config.WindChangeMax)
	}
	if sess.WindStrength < 0 || sess.WindStrength >= config.WindMaxStrength {
		t.Fatalf("WindStrength = %f out of range", sess.WindStrength)
	}
	if sess.WindDirection < 0 || sess.WindDirection >= 2*math.Pi {
		t.Fatalf("WindDirection = %f out of range", sess.WindDirection)
	}
}

func TestStreakBonusAfterFullStreak(t *testing.T) {
	ecs, session := newSessionFixture()
	sess := ecs.Session
	sess.Ammo = 0

	// Пятое попадание серию лишь закрывает, бонус даёт следующее за ним
	sess.ComboCount = config.StreakBonusEvery - 1
	session.OnEvent(hitEvent(config.BirdTypeCommon, 30))
	if sess.Ammo != 0 {
		t.Fatalf("Ammo = %d, no bonus on the streak-closing hit", sess.Ammo)
	}

	// Обычная птица патронов не даёт, но набранная серия даёт один
	session.OnEvent(hitEvent(config.BirdTypeCommon, 30))
	if sess.Ammo != 1 {
		t.Fatalf("Ammo = %d, want 1 from streak bonus", sess.Ammo)
	}
}
