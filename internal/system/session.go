// internal/system/session.go
package system

import (
	"fmt"
	"log"
	"math"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
	"go-bird-hunter/internal/event"
	"go-bird-hunter/internal/utils"
)

// SessionSystem — единственный мутатор экономики сессии. Начисляет очки
// и патроны в ответ на доменные события и ведёт таймеры комбо, волн,
// ветра и бонусов.
type SessionSystem struct {
	ecs     *entity.ECS
	effects *EffectSystem
	rng     *utils.PRNGService
	wasOver bool
}

func NewSessionSystem(ecs *entity.ECS, effects *EffectSystem, rng *utils.PRNGService) *SessionSystem {
	return &SessionSystem{ecs: ecs, effects: effects, rng: rng}
}

// OnEvent реализует event.Listener.
func (s *SessionSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.BirdHit:
		s.onBirdHit(e.Data.(event.BirdHitData))
	case event.BallLanded:
		s.onBallLanded(e.Data.(event.BallLandedData))
	case event.PipeEntered:
		s.onPipeEntered(e.Data.(event.PipeEnteredData))
	case event.WallBounced:
		s.onWallBounced(e.Data.(event.WallBouncedData))
	case event.PowerUpCollected:
		s.onPowerUpCollected(e.Data.(event.PowerUpCollectedData))
	case event.BallLaunched:
		s.onBallLaunched(e.Data.(event.BallLaunchedData))
	}
}

func (s *SessionSystem) onBirdHit(d event.BirdHitData) {
	sess := s.ecs.Session

	points := config.BirdPoints[d.BirdType]
	reward := config.BirdAmmoRewards[d.BirdType]

	// Точное попадание: двойные очки
	if d.Distance < d.CombinedRadius*config.PrecisionFraction {
		points *= 2
		s.effects.AddFloatingText(d.X, d.Y-40, "PERFECT!", config.GoldColor, 22)
		s.effects.Shake(8)
	}

	// Множитель комбо по текущей серии
	points = int(float64(points) * (1 + config.ComboStep*float64(sess.ComboCount)))

	// Снайперский бонус: попадание почти в центр цели
	if d.Distance < config.BirdCollisionRadius*config.AccuracyFraction {
		reward++
		s.effects.AddFloatingText(d.X, d.Y-60, "+1 AMMO BONUS!", config.AccentColor, 16)
	}

	// Бонус серии считается по счёту до этого попадания
	if sess.ComboCount > 0 && sess.ComboCount%config.StreakBonusEvery == 0 {
		reward++
		s.effects.AddFloatingText(d.X, d.Y-80, "STREAK BONUS +1!", config.ComboFire, 16)
	}

	sess.ComboCount++
	if sess.ComboCount > sess.MaxCombo {
		sess.MaxCombo = sess.ComboCount
	}

	sess.Score += points
	s.grantAmmo(reward, d.X, d.Y)

	sess.ComboTimer = config.ComboWindow
	sess.LastHitTime = s.ecs.GameTime
	sess.MissCount = 0

	s.effects.AddFloatingText(d.X, d.Y-20, fmt.Sprintf("+%d", points), config.GoldColor, 18)
	if sess.ComboCount > 1 {
		s.effects.AddFloatingText(d.X, d.Y+10, fmt.Sprintf("COMBO x%d!", sess.ComboCount), config.ComboFire, 16)
	}
	s.effects.AddFeatherBurst(d.X, d.Y)
	s.effects.Shake(5)
}

// grantAmmo начисляет патроны с учётом потолка.
func (s *SessionSystem) grantAmmo(reward int, x, y float64) {
	if reward <= 0 {
		return
	}
	sess := s.ecs.Session
	gained := reward
	if sess.Ammo+gained > config.MaxAmmo {
		gained = config.MaxAmmo - sess.Ammo
	}
	if gained > 0 {
		sess.Ammo += gained
		s.effects.AddFloatingText(x, y-100, fmt.Sprintf("+%d AMMO", gained), config.AccentColor, 16)
	} else {
		s.effects.AddFloatingText(x, y-100, "MAX AMMO!", config.HighScoreColor, 14)
	}
}

func (s *SessionSystem) onBallLanded(d event.BallLandedData) {
	sess := s.ecs.Session
	if sess.BallsInFlight > 0 {
		sess.BallsInFlight--
	}

	// Недавнее попадание прощает посадку
	if s.ecs.GameTime-sess.LastHitTime <= config.MissGraceWindow {
		return
	}

	sess.MissCount++
	switch {
	case sess.MissCount >= config.MissPenaltyAt:
		if sess.Ammo > 0 {
			sess.Ammo--
		}
		sess.MissCount = 0
		s.effects.AddFloatingText(d.X, d.Y-40, "MISS STREAK! -1 AMMO", config.WarningRed, 18)
		s.effects.Shake(10)
	case sess.MissCount == config.MissWarnAt:
		s.effects.AddFloatingText(d.X, d.Y-40, "ONE MORE MISS = -1 AMMO!", config.WarningRed, 14)
	}
}

func (s *SessionSystem) onPipeEntered(d event.PipeEnteredData) {
	sess := s.ecs.Session
	if sess.BallsInFlight > 0 {
		sess.BallsInFlight--
	}

	// Прямое попадание оценивается по повышенной ставке вместо обычной
	if d.DirectShot {
		sess.Score += config.PipeDirectBonus
		s.effects.AddFloatingText(d.X, d.Y-30, fmt.Sprintf("DIRECT SHOT! +%d", config.PipeDirectBonus), config.GoldColor, 22)
		s.effects.Shake(8)
	} else {
		sess.Score += config.PipeEntryPoints
		s.effects.AddFloatingText(d.X, d.Y-30, fmt.Sprintf("PIPE! +%d", config.PipeEntryPoints), config.PipeColor, 20)
	}
	// Труба — попадание, не промах
	sess.LastHitTime = s.ecs.GameTime
	sess.MissCount = 0
}

func (s *SessionSystem) onWallBounced(d event.WallBouncedData) {
	if d.Bounces == config.WallRiderAt {
		s.ecs.Session.Score += config.WallRiderPoints
		s.effects.AddFloatingText(d.X, d.Y, fmt.Sprintf("WALL RIDER! +%d", config.WallRiderPoints), config.AccentColor, 16)
	}
}

func (s *SessionSystem) onPowerUpCollected(d event.PowerUpCollectedData) {
	sess := s.ecs.Session
	switch d.PowerType {
	case config.PowerUpMultiShot:
		sess.MultiShotArmed = true
	case config.PowerUpSlowTime:
		sess.SlowTimeLeft = config.SlowTimeDuration
	case config.PowerUpBigBall:
		sess.BigBallActive = true
	case config.PowerUpMagnet:
		sess.MagnetLeft = config.MagnetDuration
	}
	s.effects.AddFloatingText(d.X, d.Y-30, component.PowerUpType(d.PowerType).Name()+"!", config.PowerUpColors[d.PowerType], 18)
}

func (s *SessionSystem) onBallLaunched(d event.BallLaunchedData) {
	if math.Abs(d.Power-1) < config.PerfectLaunchEps {
		s.effects.AddFloatingText(d.X, d.Y-40, "PERFECT LAUNCH!", config.GoldColor, 16)
	} else if d.Power < config.GentleTouchPower {
		s.effects.AddFloatingText(d.X, d.Y-40, "GENTLE TOUCH", config.HighScoreColor, 14)
	}
}

// Update ведёт таймеры сессии.
func (s *SessionSystem) Update(deltaTime float64) {
	sess := s.ecs.Session

	if sess.ComboTimer > 0 {
		sess.ComboTimer -= deltaTime
		if sess.ComboTimer <= 0 {
			sess.ComboCount = 0
		}
	}

	if sess.SlowTimeLeft > 0 {
		sess.SlowTimeLeft -= deltaTime
		if sess.SlowTimeLeft < 0 {
			sess.SlowTimeLeft = 0
		}
	}
	if sess.MagnetLeft > 0 {
		sess.MagnetLeft -= deltaTime
		if sess.MagnetLeft < 0 {
			sess.MagnetLeft = 0
		}
	}

	sess.WaveElapsed += deltaTime
	if sess.WaveElapsed >= config.WaveDuration {
		sess.WaveElapsed -= config.WaveDuration
		sess.Wave++
		s.effects.AddFloatingText(s.ecs.Width/2, s.ecs.Height/3, fmt.Sprintf("WAVE %d", sess.Wave), config.AccentColor, 32)
	}

	sess.WindTimer -= deltaTime
	if sess.WindTimer <= 0 {
		sess.WindStrength = s.rng.FloatRange(0, config.WindMaxStrength)
		sess.WindDirection = s.rng.FloatRange(0, 2*math.Pi)
		sess.WindTimer = s.rng.FloatRange(config.WindChangeMin, config.WindChangeMax)
	}

	if over := sess.GameOver(); over != s.wasOver {
		s.wasOver = over
		if over {
			log.Printf("Игра окончена: очки %d, рекорд %d, макс. комбо %d", sess.Score, sess.HighScore, sess.MaxCombo)
		}
	}
}
