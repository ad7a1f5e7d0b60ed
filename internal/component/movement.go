// internal/component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	VX, VY float64
}

// Speed возвращает модуль скорости. Считается на лету, не кэшируется.
func (v *Velocity) Speed() float64 {
	return math.Hypot(v.VX, v.VY)
}
