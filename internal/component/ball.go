// internal/component/ball.go
package component

import "image/color"

// BallState — состояние шара для взаимодействия с жестом
type BallState int

const (
	BallFree BallState = iota
	BallCaptured
)

// Ball представляет снаряд игрока. Захваченный шар не интегрируется
// и не участвует в столкновениях.
type Ball struct {
	Radius float64
	Color  color.RGBA
	State  BallState
	Squish float64 // Визуальное сжатие при натяжении рогатки

	LaunchPower float64 // Доля силы при запуске, для ачивок
	WallBounces int     // Последовательные отскоки от боковых стен
	Launched    bool    // Был ли шар хоть раз выпущен
}
