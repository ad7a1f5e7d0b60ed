// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 800
	ScreenHeight  = 600
	MinScreenSize = 100

	Gravity            = 800.0 // пикселей/с²
	BounceDampening    = 0.85  // Потеря энергии при отскоке (0-1)
	AirFriction        = 0.998 // Коэффициент сопротивления воздуха
	MaxDeltaTime       = 1.0 / 30.0
	CollisionDampening = 0.92 // Потеря энергии при столкновении шаров
	MinCollisionGap    = 2.0  // Минимальный зазор после разделения шаров
	GroundFriction     = 0.7  // Гашение горизонтальной скорости при касании пола
	RestSpeedThreshold = 10.0 // Порог скорости, ниже которого шар считается лежащим

	BallRadius        = 25.0
	SlingshotMaxForce = 3500.0
	SlingshotMaxDrag  = 200.0
	MinDragDistance   = 10.0 // Меньше — жест отменяется
	SquishMin         = 0.7
	MaxAmmo           = 8
	MaxBallsOnScreen  = 3
	StartAmmo         = 3
	MissGraceWindow   = 2.0 // Окно после попадания, в котором посадка не считается промахом
	MinStrikeSpeed    = 100.0
	StrikeSlowdown    = 0.6
	PerfectLaunchEps  = 0.05
	GentleTouchPower  = 0.2

	BirdWidth           = 60.0
	BirdCollisionRadius = 25.0
	BirdOffscreenBuffer = BirdWidth + 100.0
	WingAnimationSpeed  = 8.0 // кадров в секунду
	FlightHeightMin     = 80.0
	FlightHeightMax     = 300.0
	SineAmplitude       = 15.0
	SineFrequency       = 2.0
	ZigzagAmplitude     = 30.0
	ZigzagFrequency     = 4.0
	DodgeDistance       = 80.0
	DodgeDuration       = 1.0
	BirdSpawnMin        = 1.0
	BirdSpawnMax        = 3.0

	ComboWindow       = 3.0
	ComboStep         = 0.5 // Множитель очков: 1 + ComboStep*комбо
	StreakBonusEvery  = 5
	PrecisionFraction = 0.5 // Доля общего радиуса для «точного» попадания
	AccuracyFraction  = 0.3 // Доля радиуса цели для бонусного патрона

	MissWarnAt    = 2
	MissPenaltyAt = 3

	WaveDuration = 30.0

	WindChangeMin   = 5.0
	WindChangeMax   = 10.0
	WindMaxStrength = 100.0

	PowerUpDuration     = 5.0 // Сколько секунд бонус виден на экране
	PowerUpPickupMargin = 20.0
	SlowTimeDuration    = 10.0
	SlowTimeFactor      = 0.5
	PowerUpSpawnMin     = 15.0
	PowerUpSpawnMax     = 25.0
	MultiShotClones     = 2
	MultiShotAngleStep  = 0.3 // Радианы между клонами
	MultiShotNudge      = 100.0
	BigBallFactor       = 2.0

	CloudCount      = 3
	CloudDampeningX = 0.85
	CloudDampeningY = 0.9
	MagnetRadius    = 150.0
	MagnetForce     = 50.0
	MagnetDuration  = 10.0

	FloatingTextDuration  = 2.0
	FloatingTextRiseSpeed = 50.0
	ParticleGravity       = 100.0
	ParticleDrag          = 0.98
	ScreenShakeDuration   = 0.3

	PipeWidth       = 60.0
	PipeHeight      = 80.0
	PipeOffsetX     = 100.0 // От правого края
	PipeOffsetY     = 120.0 // От нижнего края
	PipeMouthHeight = 30.0
	PipeEntryPoints = 100
	PipeDirectBonus = 300
	WallRiderPoints = 50
	WallRiderAt     = 3

	HighScoreFile = "bird_hunter_highscore.txt"
)

// Типы птиц. Порядок фиксирован — таблицы ниже индексируются этими константами.
const (
	BirdTypeCommon = iota
	BirdTypeBonus
	BirdTypeAggressive
	BirdTypeElite
	BirdTypeCount
)

// Типы бонусов
const (
	PowerUpMultiShot = iota
	PowerUpSlowTime
	PowerUpBigBall
	PowerUpMagnet
	PowerUpTypeCount
)

var (
	BirdSpeeds       = []float64{100.0, 150.0, 120.0, 200.0} // пикселей в секунду
	BirdPoints       = []int{1, 5, 3, 10}
	BirdAmmoRewards  = []int{0, 1, 0, 2} // Обычные и агрессивные патронов не дают
	BirdSpawnWeights = []int{60, 20, 15, 5}
)

var (
	BackgroundColor = color.RGBA{135, 206, 250, 255}
	SkyDarkColor    = color.RGBA{70, 130, 180, 255}
	GroundColor     = color.RGBA{34, 139, 34, 255}
	PipeColor       = color.RGBA{0, 200, 0, 255}
	PipeDarkColor   = color.RGBA{0, 150, 0, 255}
	CloudColor      = color.RGBA{255, 255, 255, 255}
	CloudShadow     = color.RGBA{220, 220, 220, 255}
	ShadowColor     = color.RGBA{30, 30, 30, 255}

	TextColor      = color.RGBA{32, 33, 36, 255}
	HighScoreColor = color.RGBA{95, 99, 104, 255}
	WarningRed     = color.RGBA{255, 50, 50, 255}
	ComboFire      = color.RGBA{255, 150, 0, 255}
	GoldColor      = color.RGBA{255, 215, 0, 255}
	AccentColor    = color.RGBA{66, 133, 244, 255}
	WhiteColor     = color.RGBA{248, 249, 250, 255}

	SlingshotLineColor  = color.RGBA{95, 99, 104, 255}
	TrajectoryColor     = color.RGBA{66, 133, 244, 255}
	PowerMeterBackColor = color.RGBA{200, 200, 200, 255}
	PowerMeterFillColor = color.RGBA{85, 255, 85, 255}

	BallColors = []color.RGBA{
		{255, 85, 85, 255},  // Red
		{85, 85, 255, 255},  // Blue
		{85, 255, 85, 255},  // Green
		{255, 165, 0, 255},  // Orange
		{255, 85, 255, 255}, // Purple
		{85, 255, 255, 255}, // Cyan
	}

	BirdColors = []color.RGBA{
		{139, 69, 19, 255}, // Коричневая — обычная
		{255, 215, 0, 255}, // Золотая — бонусная
		{220, 20, 20, 255}, // Красная — агрессивная
		{0, 100, 255, 255}, // Синяя — элитная
	}
	BirdBeakColor = color.RGBA{255, 165, 0, 255}
	BirdEyeColor  = color.RGBA{255, 255, 255, 255}

	PowerUpColors = []color.RGBA{
		{255, 100, 255, 255}, // MultiShot — пурпурный
		{100, 255, 100, 255}, // SlowTime — зелёный
		{255, 100, 100, 255}, // BigBall — красный
		{100, 100, 255, 255}, // Magnet — синий
	}

	FeatherColors = []color.RGBA{
		{248, 249, 250, 255},
		{245, 245, 220, 255},
		{255, 248, 220, 255},
		{250, 235, 215, 255},
	}
)
