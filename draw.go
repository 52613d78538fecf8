package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hako/durafmt"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

var whiteImage *ebiten.Image

// hudPalette is chosen once at startup from the OS appearance.
type hudPalette struct {
	text  color.RGBA
	plate color.RGBA
	panel color.RGBA
}

var hud = hudPalette{
	text:  color.RGBA{0xee, 0xee, 0xee, 0xff},
	plate: color.RGBA{0x00, 0x00, 0x00, 0xa0},
	panel: color.RGBA{0x10, 0x10, 0x10, 0xc0},
}

func setHUDPalette(darkMode bool) {
	if darkMode {
		hud = hudPalette{
			text:  color.RGBA{0xee, 0xee, 0xee, 0xff},
			plate: color.RGBA{0x00, 0x00, 0x00, 0xa0},
			panel: color.RGBA{0x10, 0x10, 0x10, 0xc0},
		}
		return
	}
	hud = hudPalette{
		text:  color.RGBA{0x11, 0x11, 0x11, 0xff},
		plate: color.RGBA{0xff, 0xff, 0xff, 0xa0},
		panel: color.RGBA{0xf0, 0xf0, 0xf0, 0xc0},
	}
}

var (
	statusUpColor   = color.RGBA{0x2e, 0xc2, 0x4e, 0xff}
	statusDownColor = color.RGBA{0xd0, 0x33, 0x2b, 0xff}
)

var nameCollator = collate.New(language.Und)

// drawScene renders one frame: world background at the camera offset, every
// visible player's sprite and name, then the HUD on top.
func drawScene(screen *ebiten.Image) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	screen.Fill(color.RGBA{0x12, 0x12, 0x12, 0xff})
	drawBackground(screen)

	list := getPlayers()
	// Lower players draw later so they overlap the ones behind them.
	sort.Slice(list, func(i, j int) bool {
		if list[i].Y != list[j].Y {
			return list[i].Y < list[j].Y
		}
		return list[i].ID < list[j].ID
	})
	for _, p := range list {
		drawPlayer(screen, p)
	}

	drawHUD(screen)
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		drawPlayersOverlay(screen)
	}
}

// drawBackground blits the world translated by the camera offset. The GPU
// clips to the viewport, which is the same as sourcing the camera rectangle.
func drawBackground(screen *ebiten.Image) {
	if worldImg == nil {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: drawFilter}
	op.GeoM.Translate(-camX, -camY)
	screen.DrawImage(worldImg, op)
}

// drawPlayer draws one avatar sprite anchored center-bottom at the player's
// screen position, plus its name plate. Players fully outside the viewport
// expanded by one avatar size are culled; missing frame data skips the
// sprite for this frame.
func drawPlayer(screen *ebiten.Image, p Player) {
	sx := p.X - camX
	sy := p.Y - camY
	vw, vh := viewportSize()
	if sx < -avatarDrawWidth || sx > vw+avatarDrawWidth ||
		sy < -avatarDrawWidth || sy > vh+avatarDrawWidth {
		return
	}

	frames, facing, mirrored := resolveFacing(getAvatar(p.Avatar), p.Facing)
	idx, ok := frameIndex(frames, p.AnimationFrame)
	if !ok {
		return
	}
	img, ready := frameImage(frameKey{avatar: p.Avatar, facing: facing, index: idx})
	if !ready {
		return
	}

	iw := img.Bounds().Dx()
	ih := img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	scale := avatarDrawWidth / float64(iw)
	dh := float64(ih) * scale

	op := &ebiten.DrawImageOptions{Filter: drawFilter}
	if mirrored {
		// Flip about the sprite's vertical center line.
		op.GeoM.Scale(-scale, scale)
		op.GeoM.Translate(sx+avatarDrawWidth/2, sy-dh)
	} else {
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx-avatarDrawWidth/2, sy-dh)
	}
	screen.DrawImage(img, op)

	if gs.ShowNames && p.Username != "" {
		drawNameTag(screen, p.Username, sx, sy-dh)
	}
}

// drawNameTag centers a name above the sprite on a semi-opaque plate sized
// to the text.
func drawNameTag(screen *ebiten.Image, name string, cx, top float64) {
	w, h := text.Measure(name, nameFace, 0)
	pw := math.Ceil(w) + 6
	ph := math.Ceil(h) + 2
	left := math.Round(cx - pw/2)
	ty := math.Round(top - ph - 4)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(pw, ph)
	op.GeoM.Translate(left, ty)
	op.ColorScale.ScaleWithColor(hud.plate)
	screen.DrawImage(whiteImage, op)

	opTxt := &text.DrawOptions{}
	opTxt.GeoM.Translate(left+3, ty+1)
	opTxt.ColorScale.ScaleWithColor(hud.text)
	text.Draw(screen, name, nameFace, opTxt)
}

// drawHUD paints the fixed connection readout: status dot and label, the
// live player count, session uptime, and optional network/FPS stats.
func drawHUD(screen *ebiten.Image) {
	up := connected.Load()
	dotColor := statusDownColor
	label := "Disconnected"
	if up {
		dotColor = statusUpColor
		label = "Connected"
	}
	vector.DrawFilledCircle(screen, 16, 18, 5, dotColor, true)
	drawHUDLine(screen, label, 28, 10)
	drawHUDLine(screen, fmt.Sprintf("%d players", playerCount()), 28, 28)
	if up {
		d := connectionUptime().Truncate(time.Second)
		drawHUDLine(screen, durafmt.Parse(d).LimitFirstN(2).Format(shortUnits), 28, 46)
	}
	if gs.DebugHUD {
		stats := fmt.Sprintf("%s received, %.0f fps", humanize.Bytes(uint64(netBytes.Load())), ebiten.ActualFPS())
		drawHUDLine(screen, stats, 28, 64)
	}
}

func drawHUDLine(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hud.text)
	text.Draw(screen, s, hudFace, op)
}

// drawPlayersOverlay lists everyone online while Tab is held.
func drawPlayersOverlay(screen *ebiten.Image) {
	list := getPlayers()
	names := make([]string, 0, len(list))
	for _, p := range list {
		if p.Username != "" {
			names = append(names, p.Username)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return nameCollator.CompareString(names[i], names[j]) < 0
	})

	const lineH = 18.0
	pw := 180.0
	ph := lineH*float64(len(names)) + 28
	vw, _ := viewportSize()
	left := vw - pw - 10

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(pw, ph)
	op.GeoM.Translate(left, 10)
	op.ColorScale.ScaleWithColor(hud.panel)
	screen.DrawImage(whiteImage, op)

	drawHUDLine(screen, "Players", left+10, 16)
	for i, n := range names {
		drawHUDLine(screen, n, left+10, 16+lineH*float64(i+1))
	}
}

func drawVLine(img *ebiten.Image, x, height int, clr color.Color) {
	vector.StrokeLine(img, float32(x), 0, float32(x), float32(height), 1, clr, false)
}

func drawHLine(img *ebiten.Image, y, width int, clr color.Color) {
	vector.StrokeLine(img, 0, float32(y), float32(width), float32(y), 1, clr, false)
}
