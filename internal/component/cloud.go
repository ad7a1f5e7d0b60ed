// internal/component/cloud.go
package component

// Cloud — движущееся облако-препятствие. Не уничтожается, оборачивается
// по горизонтали вокруг поля.
type Cloud struct {
	Width, Height float64
	VX            float64
}

// ContainsPoint проверяет, лежит ли точка внутри прямоугольника облака.
// x, y — левый верхний угол облака (его Position).
func (c *Cloud) ContainsPoint(x, y, px, py float64) bool {
	return px >= x && px <= x+c.Width && py >= y && py <= y+c.Height
}
