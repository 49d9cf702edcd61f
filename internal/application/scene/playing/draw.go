package playing

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/zgame/internal/application/state"
	"github.com/younwookim/zgame/internal/domain/effect"
	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/stat"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorHit        = color.RGBA{255, 255, 255, 255}
	colorProjectile = color.RGBA{255, 200, 100, 255}
	colorBarBG      = color.RGBA{60, 60, 60, 255}
	colorHealth     = color.RGBA{100, 200, 100, 255}
	colorMana       = color.RGBA{90, 120, 230, 255}
	colorStamina    = color.RGBA{220, 190, 80, 255}
)

// Draw renders the room, its mobs and the HUD
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	p.drawTiles(screen, camX, camY)
	p.world.EachEnemy(func(m *entity.Mob) {
		p.drawMob(screen, m, colorEnemy, camX, camY)
	})
	if player := p.world.Player(); player != nil {
		p.drawMob(screen, player, colorPlayer, camX, camY)
	}
	p.world.EachProjectile(func(pr *entity.Projectile) {
		if pr.Active {
			r := pr.Rect
			ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, r.H, colorProjectile)
		}
	})

	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, fmt.Sprintf("GAME OVER\n\nKills: %d\n\nR to restart", p.kills))
	case state.StateCleared:
		ebitenutil.DebugPrintAt(screen, "ROOM CLEARED - R to restart", p.screenW/2-80, 20)
	}
}

// camera returns the top-left world point on screen: the player centered,
// clamped to the room, shaken after hits
func (p *Playing) camera() (float64, float64) {
	player := p.world.Player()
	if player == nil {
		return 0, 0
	}
	cx, cy := player.Center()
	x := cx - float64(p.screenW)/2
	y := cy - float64(p.screenH)/2
	x = math.Max(0, math.Min(x, p.room.PixelWidth()-float64(p.screenW)))
	y = math.Max(0, math.Min(y, p.room.PixelHeight()-float64(p.screenH)))
	if p.shake > 0.5 {
		phase := float64(p.ticks)
		x += p.shake * math.Sin(phase*1.7)
		y += p.shake * math.Cos(phase*2.3)
	}
	return math.Round(x), math.Round(y)
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	size := p.room.TileSize()
	x0 := int(camX / size)
	y0 := int(camY / size)
	x1 := int((camX+float64(p.screenW))/size) + 1
	y1 := int((camY+float64(p.screenH))/size) + 1

	for ty := max(y0, 0); ty <= y1 && ty < p.room.Height(); ty++ {
		for tx := max(x0, 0); tx <= x1 && tx < p.room.Width(); tx++ {
			t := p.room.Tile(tx, ty)
			if !t.Type().Solid() {
				continue
			}
			r := t.Rect()
			ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, r.H, t.Type().Render())
		}
	}
}

func (p *Playing) drawMob(screen *ebiten.Image, m *entity.Mob, c color.RGBA, camX, camY float64) {
	if m.HitTimer > 0 && int(m.HitTimer*20)%2 == 0 {
		c = colorHit
	}
	r := m.Rect
	x, y := r.X-camX, r.Y-camY
	ebitenutil.DrawRect(screen, x, y, r.W, r.H, c)

	// Facing marker
	eyeX := x + r.W - 3
	if !m.FacingRight {
		eyeX = x + 1
	}
	ebitenutil.DrawRect(screen, eyeX, y+3, 2, 2, colorBG)

	if m.Kind != entity.KindPlayer {
		hp := m.Stats().Current(stat.Health) / m.Stats().Max(stat.Health)
		ebitenutil.DrawRect(screen, x, y-4, r.W, 2, colorBarBG)
		ebitenutil.DrawRect(screen, x, y-4, r.W*hp, 2, colorHealth)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	player := p.world.Player()
	if player == nil {
		return
	}
	st := player.Stats()

	y := float64(p.screenH - 30)
	for _, bar := range []struct {
		typ stat.Type
		c   color.RGBA
	}{
		{stat.Health, colorHealth},
		{stat.Mana, colorMana},
		{stat.Stamina, colorStamina},
	} {
		ratio := 0.0
		if hi := st.Max(bar.typ); hi > 0 {
			ratio = st.Current(bar.typ) / hi
		}
		ebitenutil.DrawRect(screen, 8, y, 80, 6, colorBarBG)
		ebitenutil.DrawRect(screen, 8, y, 80*ratio, 6, bar.c)
		y += 8
	}

	var spells strings.Builder
	for i, name := range player.Book.Names() {
		if i == player.Book.SelectedIndex() {
			fmt.Fprintf(&spells, "[%d %s] ", i+1, name)
		} else {
			fmt.Fprintf(&spells, " %d %s  ", i+1, name)
		}
	}
	ebitenutil.DebugPrintAt(screen, spells.String(), 96, p.screenH-32)

	var effects []string
	player.Effects().Each(func(e effect.StatusEffect) {
		if e.Permanent() {
			effects = append(effects, e.Name())
		} else {
			effects = append(effects, fmt.Sprintf("%s %.1fs", e.Name(), e.Remaining()))
		}
	})
	if len(effects) > 0 {
		ebitenutil.DebugPrintAt(screen, strings.Join(effects, "  "), 96, p.screenH-18)
	}

	ebitenutil.DebugPrint(screen, "A/D move  W jump  J cast  Q/E/1-5 spell  F5 save  F9 load  ESC pause")
	if p.messageTimer > 0 {
		ebitenutil.DebugPrintAt(screen, p.message, p.screenW-100, 16)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}
