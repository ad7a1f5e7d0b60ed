// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-gl/mathgl/mgl64"

	"go-bird-hunter/internal/component"
	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
)

// RenderSystem рисует мир: фон, трубу, облака, птиц, бонусы, шары,
// частицы и всплывающие тексты. Не читает ввод и не меняет состояние,
// кроме косметического режима отрисовки птиц.
type RenderSystem struct {
	ecs      *entity.ECS
	fillImg  *ebiten.Image
	fontFace font.Face

	// Mode переключает стиль отрисовки птиц (клавиша B)
	Mode int
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{
		ecs:      ecs,
		fontFace: basicfont.Face7x13,
	}
}

// ToggleMode циклически переключает стиль птиц.
func (s *RenderSystem) ToggleMode() {
	s.Mode = (s.Mode + 1) % 2
}

// DrawBackground рисует небо, землю и трубу.
func (s *RenderSystem) DrawBackground(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	w := float32(s.ecs.Width)
	h := float32(s.ecs.Height)

	// Земля — тонкая полоса у нижнего края
	vector.DrawFilledRect(screen, 0, h-10, w, 10, config.GroundColor, true)

	// Труба у правого края
	px := w - float32(config.PipeOffsetX)
	py := h - float32(config.PipeOffsetY)
	vector.DrawFilledRect(screen, px, py, float32(config.PipeWidth), float32(config.PipeHeight), config.PipeColor, true)
	// Горловина чуть шире тела
	vector.DrawFilledRect(screen, px-4, py, float32(config.PipeWidth)+8, float32(config.PipeMouthHeight), config.PipeDarkColor, true)
}

// DrawEntities рисует все сущности мира в порядке задник-к-переду.
func (s *RenderSystem) DrawEntities(screen *ebiten.Image) {
	s.drawClouds(screen)
	s.drawPowerUps(screen)
	s.drawBirds(screen)
	s.drawBalls(screen)
	s.drawParticles(screen)
	s.drawFloatingTexts(screen)
}

func (s *RenderSystem) drawClouds(screen *ebiten.Image) {
	for id, cloud := range s.ecs.Clouds {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		// Облако из трёх перекрывающихся кругов
		cx := float32(pos.X + cloud.Width/2)
		cy := float32(pos.Y + cloud.Height/2)
		r := float32(cloud.Height / 2)
		vector.DrawFilledCircle(screen, cx-r, cy+2, r*0.9, config.CloudShadow, true)
		vector.DrawFilledCircle(screen, cx-r, cy, r*0.9, config.CloudColor, true)
		vector.DrawFilledCircle(screen, cx, cy-4, r*1.1, config.CloudColor, true)
		vector.DrawFilledCircle(screen, cx+r, cy, r*0.9, config.CloudColor, true)
	}
}

func (s *RenderSystem) drawPowerUps(screen *ebiten.Image) {
	now := s.ecs.GameTime
	for id, pu := range s.ecs.PowerUps {
		pos := s.ecs.Positions[id]
		if pos == nil || !pu.Active(now) {
			continue
		}
		clr := fadeColor(pu.Type.Color(), pu.Alpha(now))
		// Лёгкое покачивание на месте
		bob := math.Sin((now-pu.SpawnTime)*4) * 4
		x := float32(pos.X)
		y := float32(pos.Y + bob)
		vector.DrawFilledCircle(screen, x, y, 14, clr, true)
		vector.DrawFilledCircle(screen, x, y, 10, fadeColor(config.WhiteColor, pu.Alpha(now)), true)
		label := pu.Type.Name()[:1]
		text.Draw(screen, label, s.fontFace, int(x)-3, int(y)+4, config.TextColor)
	}
}

func (s *RenderSystem) drawBirds(screen *ebiten.Image) {
	for id, bird := range s.ecs.Birds {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		x := float32(pos.X)
		y := float32(pos.Y)
		body := bird.Color()

		vector.DrawFilledCircle(screen, x, y, float32(config.BirdCollisionRadius)*0.8, body, true)

		// Клюв — треугольник по направлению полёта
		dir := float32(bird.Direction)
		s.fillTriangle(screen,
			x+dir*18, y-4,
			x+dir*18, y+4,
			x+dir*28, y,
			config.BirdBeakColor)

		// Глаз
		eyeX := x + dir*8
		vector.DrawFilledCircle(screen, eyeX, y-6, 4, config.BirdEyeColor, true)
		vector.DrawFilledCircle(screen, eyeX+dir*1, y-6, 2, config.TextColor, true)

		// Крыло: положение зависит от кадра взмаха
		wingY := y + float32(bird.WingFrame-1)*6
		switch s.Mode {
		case 1:
			vector.DrawFilledRect(screen, x-14, wingY-3, 18, 6, darker(body), true)
		default:
			vector.DrawFilledCircle(screen, x-6, wingY, 9, darker(body), true)
		}
	}
}

func (s *RenderSystem) drawBalls(screen *ebiten.Image) {
	for id, ball := range s.ecs.Balls {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		r := float32(ball.Radius)
		if ball.State == component.BallCaptured {
			r = float32(ball.Radius * ball.Squish)
		}
		// Тень на земле
		shadowY := float32(s.ecs.Height - 8)
		if float32(pos.Y) < shadowY {
			shadow := config.ShadowColor
			shadow.A = 60
			vector.DrawFilledCircle(screen, float32(pos.X), shadowY, r*0.7, shadow, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r, ball.Color, true)
		// Блик
		vector.DrawFilledCircle(screen, float32(pos.X)-r*0.3, float32(pos.Y)-r*0.3, r*0.25, config.WhiteColor, true)
	}
}

func (s *RenderSystem) drawParticles(screen *ebiten.Image) {
	for id, p := range s.ecs.Particles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(p.Size), fadeColor(p.Color, p.Alpha()), true)
	}
}

func (s *RenderSystem) drawFloatingTexts(screen *ebiten.Image) {
	for id, t := range s.ecs.FloatingTexts {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		clr := fadeColor(t.Color, t.Alpha())
		x, y := int(pos.X), int(pos.Y)
		text.Draw(screen, t.Text, s.fontFace, x, y, clr)
		if t.FontSize >= 20 {
			// Крупные тексты утолщаются повторной отрисовкой
			text.Draw(screen, t.Text, s.fontFace, x+1, y, clr)
		}
	}
}

// DrawSlingshot рисует резинку от якоря к захваченному шару.
func (s *RenderSystem) DrawSlingshot(screen *ebiten.Image, anchor, ball mgl64.Vec2) {
	vector.StrokeLine(screen,
		float32(anchor.X()), float32(anchor.Y()),
		float32(ball.X()), float32(ball.Y()),
		3.0, config.SlingshotLineColor, true)
}

// DrawTrajectory рисует пунктирный прогноз полёта.
func (s *RenderSystem) DrawTrajectory(screen *ebiten.Image, points []mgl64.Vec2) {
	for i, p := range points {
		if i%2 != 0 {
			continue
		}
		r := float32(4 - 3*float64(i)/float64(len(points)))
		if r < 1 {
			r = 1
		}
		vector.DrawFilledCircle(screen, float32(p.X()), float32(p.Y()), r, config.TrajectoryColor, true)
	}
}

// DrawPowerMeter рисует индикатор силы натяжения рядом с шаром.
func (s *RenderSystem) DrawPowerMeter(screen *ebiten.Image, at mgl64.Vec2, power float64) {
	x := float32(at.X()) - 25
	y := float32(at.Y()) + 40
	vector.DrawFilledRect(screen, x, y, 50, 8, config.PowerMeterBackColor, true)
	fill := config.PowerMeterFillColor
	if power > 0.95 {
		fill = config.GoldColor
	}
	vector.DrawFilledRect(screen, x, y, float32(50*power), 8, fill, true)
}

// fillTriangle закрашивает треугольник через белый пиксель и DrawTriangles.
func (s *RenderSystem) fillTriangle(screen *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.RGBA) {
	if s.fillImg == nil {
		s.fillImg = ebiten.NewImage(1, 1)
		s.fillImg.Fill(color.White)
	}
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x1, DstY: y1, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2, DstY: y2, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// fadeColor умножает альфу цвета на коэффициент.
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func darker(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.7),
		G: uint8(float64(c.G) * 0.7),
		B: uint8(float64(c.B) * 0.7),
		A: c.A,
	}
}
