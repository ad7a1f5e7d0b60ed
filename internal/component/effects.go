// internal/component/effects.go
package component

import "image/color"

// FloatingText — всплывающий текст обратной связи. Чистая презентация,
// не авторитетное состояние игры.
type FloatingText struct {
	Text     string
	Color    color.RGBA
	FontSize int
	Life     float64 // Оставшееся время жизни, секунды
	Duration float64
}

// Alpha считается из оставшегося времени жизни.
func (t *FloatingText) Alpha() float64 {
	if t.Life <= 0 {
		return 0
	}
	a := t.Life / (t.Duration * 0.3)
	if a > 1 {
		return 1
	}
	return a
}

// Alive — жив ли текст.
func (t *FloatingText) Alive() bool {
	return t.Life > 0
}

// Particle — частица (перья, клочья облака)
type Particle struct {
	Color     color.RGBA
	Size      float64
	Life      float64
	StartLife float64
}

// Alpha считается из оставшейся жизни.
func (p *Particle) Alpha() float64 {
	if p.Life <= 0 {
		return 0
	}
	return p.Life / p.StartLife
}

// Alive — жива ли частица.
func (p *Particle) Alive() bool {
	return p.Life > 0
}
