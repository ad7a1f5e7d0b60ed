// internal/component/bird.go
package component

import (
	"image/color"

	"go-bird-hunter/internal/config"
)

// BirdType — закрытый набор типов птиц. Тип выбирается при спауне
// и не меняется до конца жизни птицы.
type BirdType int

const (
	BirdCommon     BirdType = config.BirdTypeCommon
	BirdBonus      BirdType = config.BirdTypeBonus
	BirdAggressive BirdType = config.BirdTypeAggressive
	BirdElite      BirdType = config.BirdTypeElite
)

// Bird — летящая цель
type Bird struct {
	Type       BirdType
	Direction  int     // 1 — направо, -1 — налево
	BaseY      float64 // Базовая высота полёта для синусоиды
	FlightTime float64 // Накопленное время полёта; замедляется под слоу-мо
	WingFrame  int     // Кадр анимации крыльев (0..2)
	Dodging    bool    // Уклонение элитной птицы
	DodgeTime  float64 // Сколько длится текущее уклонение
}

// Speed возвращает скорость птицы по её типу.
func (b *Bird) Speed() float64 {
	return config.BirdSpeeds[b.Type]
}

// Points возвращает базовые очки за попадание.
func (b *Bird) Points() int {
	return config.BirdPoints[b.Type]
}

// AmmoReward возвращает награду патронами за попадание.
func (b *Bird) AmmoReward() int {
	return config.BirdAmmoRewards[b.Type]
}

// Color возвращает цвет тела птицы по типу.
func (b *Bird) Color() color.RGBA {
	return config.BirdColors[b.Type]
}

// IsOnScreen проверяет, не улетела ли птица за пределы поля (с запасом).
func (b *Bird) IsOnScreen(x, fieldWidth float64) bool {
	return x >= -config.BirdOffscreenBuffer && x <= fieldWidth+config.BirdOffscreenBuffer
}
