// internal/component/session.go
package component

import "go-bird-hunter/internal/config"

// Session — состояние игровой сессии: экономика, комбо, волны, ветер.
// Мутируется только системой сессии в ответ на доменные события и таймеры.
type Session struct {
	// Патроны
	Ammo          int
	BallsInFlight int

	// Очки
	Score     int
	HighScore int

	// Комбо
	ComboCount  int
	ComboTimer  float64 // Обратный отсчёт до сброса комбо
	LastHitTime float64 // Игровое время последнего засчитанного попадания
	MaxCombo    int

	// Промахи
	MissCount  int
	ShotsFired int

	// Волны
	Wave        int
	WaveElapsed float64

	// Активные бонусы
	MultiShotArmed bool
	SlowTimeLeft   float64 // Обратный отсчёт замедления
	BigBallActive  bool
	MagnetLeft     float64 // Обратный отсчёт притяжения

	// Ветер
	WindStrength  float64
	WindDirection float64 // Угол в радианах
	WindTimer     float64 // Обратный отсчёт до смены ветра

	// Тряска экрана
	ShakeTimer     float64
	ShakeIntensity float64
}

// NewSession создаёт сессию с начальными значениями.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// GameOver — игра окончена, когда нет ни патронов, ни шаров в полёте.
func (s *Session) GameOver() bool {
	return s.Ammo <= 0 && s.BallsInFlight <= 0
}

// SlowTimeActive — действует ли замедление времени.
func (s *Session) SlowTimeActive() bool {
	return s.SlowTimeLeft > 0
}

// MagnetActive — действует ли притяжение к птицам.
func (s *Session) MagnetActive() bool {
	return s.MagnetLeft > 0
}

// Reset возвращает сессию к начальным значениям. Рекорд не обнуляется:
// вызывающая сторона обновляет его до сброса.
func (s *Session) Reset() {
	s.Ammo = config.StartAmmo
	s.BallsInFlight = 0
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	s.Score = 0
	s.ComboCount = 0
	s.ComboTimer = 0
	s.LastHitTime = -config.MissGraceWindow
	s.MissCount = 0
	s.ShotsFired = 0
	s.Wave = 1
	s.WaveElapsed = 0
	s.MultiShotArmed = false
	s.SlowTimeLeft = 0
	s.BigBallActive = false
	s.MagnetLeft = 0
	s.WindStrength = 0
	s.WindDirection = 0
	s.WindTimer = 0
	s.ShakeTimer = 0
	s.ShakeIntensity = 0
}
