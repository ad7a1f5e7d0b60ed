// internal/utils/math.go
package utils

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Clamp ограничивает значение диапазоном [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Dist возвращает расстояние между двумя точками
func Dist(a, b mgl64.Vec2) float64 {
	return a.Sub(b).Len()
}

// Contains проверяет, лежит ли точка p внутри круга с центром c и радиусом r
func Contains(c mgl64.Vec2, r float64, p mgl64.Vec2) bool {
	return Dist(c, p) <= r
}

// SafeNormalize нормализует вектор; нулевой вектор возвращается как есть,
// чтобы не плодить NaN в физике.
func SafeNormalize(v mgl64.Vec2) mgl64.Vec2 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
