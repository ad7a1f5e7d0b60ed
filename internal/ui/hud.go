// internal/ui/hud.go
package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-bird-hunter/internal/config"
	"go-bird-hunter/internal/entity"
)

// HUD рисует счёт, патроны, комбо, волну, ветер и активные бонусы.
// Читает сессию, ничего не мутирует.
type HUD struct {
	ecs      *entity.ECS
	fontFace font.Face
}

func NewHUD(ecs *entity.ECS) *HUD {
	return &HUD{ecs: ecs, fontFace: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	sess := h.ecs.Session

	// Счёт и рекорд
	text.Draw(screen, fmt.Sprintf("SCORE: %d", sess.Score), h.fontFace, 10, 20, config.TextColor)
	best := sess.HighScore
	if sess.Score > best {
		best = sess.Score
	}
	text.Draw(screen, fmt.Sprintf("BEST: %d", best), h.fontFace, 10, 36, config.HighScoreColor)

	h.drawAmmo(screen)
	h.drawCombo(screen)
	h.drawWave(screen)
	h.drawWind(screen)
	h.drawPowerUps(screen)

	if sess.GameOver() {
		h.drawGameOver(screen)
	}
}

func (h *HUD) drawAmmo(screen *ebiten.Image) {
	sess := h.ecs.Session
	text.Draw(screen, "AMMO:", h.fontFace, 10, 56, config.TextColor)
	for i := 0; i < sess.Ammo; i++ {
		vector.DrawFilledCircle(screen, float32(58+i*16), 52, 6, config.AccentColor, true)
	}
	// Мигающее предупреждение на последнем патроне
	if sess.Ammo == 1 && !sess.GameOver() && int(h.ecs.GameTime*4)%2 == 0 {
		text.Draw(screen, "LOW AMMO!", h.fontFace, 10, 74, config.WarningRed)
	}
}

func (h *HUD) drawCombo(screen *ebiten.Image) {
	sess := h.ecs.Session
	if sess.ComboCount <= 1 {
		return
	}
	text.Draw(screen, fmt.Sprintf("COMBO x%d", sess.ComboCount), h.fontFace, 10, 94, config.ComboFire)
	// Полоска оставшегося окна комбо
	frac := float32(sess.ComboTimer / config.ComboWindow)
	vector.DrawFilledRect(screen, 10, 100, 80, 4, config.PowerMeterBackColor, true)
	vector.DrawFilledRect(screen, 10, 100, 80*frac, 4, config.ComboFire, true)
}

func (h *HUD) drawWave(screen *ebiten.Image) {
	sess := h.ecs.Session
	remaining := config.WaveDuration - sess.WaveElapsed
	label := fmt.Sprintf("WAVE %d  (%02d)", sess.Wave, int(remaining)+1)
	x := int(h.ecs.Width/2) - len(label)*7/2
	text.Draw(screen, label, h.fontFace, x, 20, config.TextColor)
}

func (h *HUD) drawWind(screen *ebiten.Image) {
	sess := h.ecs.Session
	if sess.WindStrength <= 0 {
		return
	}
	cx := float32(h.ecs.Width/2) - 20
	cy := float32(40)
	length := float32(10 + 20*sess.WindStrength/config.WindMaxStrength)
	dx := float32(math.Cos(sess.WindDirection)) * length
	dy := float32(math.Sin(sess.WindDirection)) * length
	vector.StrokeLine(screen, cx, cy, cx+dx, cy+dy, 2, config.AccentColor, true)
	vector.DrawFilledCircle(screen, cx+dx, cy+dy, 3, config.AccentColor, true)
	text.Draw(screen, fmt.Sprintf("WIND %d", int(sess.WindStrength)), h.fontFace, int(cx)+30, int(cy)+4, config.HighScoreColor)
}

func (h *HUD) drawPowerUps(screen *ebiten.Image) {
	sess := h.ecs.Session
	x := int(h.ecs.Width) - 130
	y := 20
	if sess.MultiShotArmed {
		text.Draw(screen, "MULTISHOT READY", h.fontFace, x, y, config.PowerUpColors[config.PowerUpMultiShot])
		y += 16
	}
	if sess.SlowTimeActive() {
		text.Draw(screen, fmt.Sprintf("SLOW-MO %.1f", sess.SlowTimeLeft), h.fontFace, x, y, config.PowerUpColors[config.PowerUpSlowTime])
		y += 16
	}
	if sess.BigBallActive {
		text.Draw(screen, "BIG BALL ACTIVE", h.fontFace, x, y, config.PowerUpColors[config.PowerUpBigBall])
		y += 16
	}
	if sess.MagnetActive() {
		text.Draw(screen, fmt.Sprintf("MAGNET %.1f", sess.MagnetLeft), h.fontFace, x, y, config.PowerUpColors[config.PowerUpMagnet])
	}
}

func (h *HUD) drawGameOver(screen *ebiten.Image) {
	sess := h.ecs.Session
	w := float32(h.ecs.Width)
	hh := float32(h.ecs.Height)

	overlay := config.ShadowColor
	overlay.A = 160
	vector.DrawFilledRect(screen, 0, 0, w, hh, overlay, true)

	cx := int(h.ecs.Width / 2)
	cy := int(h.ecs.Height / 2)
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("SCORE: %d", sess.Score),
		fmt.Sprintf("BEST: %d", sess.HighScore),
		fmt.Sprintf("SHOTS: %d   MAX COMBO: x%d", sess.ShotsFired, sess.MaxCombo),
		"PRESS R TO RESTART",
	}
	for i, line := range lines {
		x := cx - len(line)*7/2
		text.Draw(screen, line, h.fontFace, x, cy-40+i*20, config.WhiteColor)
	}
}
