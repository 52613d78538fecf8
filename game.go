package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	dark "github.com/thiagokokada/dark-mode-go"
)

const (
	initialWindowW = 800
	initialWindowH = 600

	// Sprites draw at a fixed width; height follows the source aspect ratio.
	avatarDrawWidth = 64.0
)

var (
	gameCtx context.Context

	// Viewport size in pixels, updated by Layout every frame.
	screenW = initialWindowW
	screenH = initialWindowH

	worldImg *ebiten.Image

	lastSettingsSave time.Time
)

func viewportSize() (float64, float64) {
	return float64(screenW), float64(screenH)
}

type Game struct{}

var once sync.Once

func (g *Game) Update() error {
	select {
	case <-gameCtx.Done():
		return errors.New("shutdown")
	default:
	}

	once.Do(initGame)

	drainNetEvents()
	pollInput()
	stepCamera()

	if time.Since(lastSettingsSave) >= 5*time.Second {
		if settingsDirty {
			saveSettings()
			settingsDirty = false
		}
		lastSettingsSave = time.Now()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != screenW || outsideHeight != screenH {
		screenW, screenH = outsideWidth, outsideHeight
		recomputeCameraTarget()
	}
	return outsideWidth, outsideHeight
}

func runGame(ctx context.Context) {
	gameCtx = ctx

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(initialWindowW, initialWindowH)
	ebiten.SetWindowTitle("gowander")

	op := &ebiten.RunGameOptions{ScreenTransparent: false}
	if err := ebiten.RunGameWithOptions(&Game{}, op); err != nil && !errors.Is(ctx.Err(), context.Canceled) {
		logError("ebiten: %v", err)
	}
	if settingsDirty {
		saveSettings()
	}
}

func initGame() {
	ebiten.SetTPS(ebiten.SyncWithFPS)
	applySettings()
	initFont()
	initHUDTheme()
	loadWorldImage()
}

// initHUDTheme picks the HUD palette from the OS appearance.
func initHUDTheme() {
	darkMode, err := dark.IsDarkMode()
	if err != nil {
		darkMode = true
	}
	setHUDPalette(darkMode)
}

// loadWorldImage loads the world background from the data directory. When
// the file is missing the client still runs, on a generated grid backdrop.
func loadWorldImage() {
	data, err := os.ReadFile("data/world.png")
	if err == nil {
		if img, err2 := decodeImageBytes(data); err2 == nil {
			worldImg = ebiten.NewImageFromImage(img)
			return
		} else {
			logError("decode world image: %v", err2)
		}
	} else {
		logError("load world image: %v", err)
	}
	worldImg = generateGridWorld()
}

func decodeImageBytes(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// generateGridWorld builds a flat backdrop with grid lines so positions stay
// readable without the real map asset.
func generateGridWorld() *ebiten.Image {
	const cell = 128
	img := ebiten.NewImage(int(worldWidth), int(worldHeight))
	img.Fill(color.RGBA{0x22, 0x33, 0x22, 0xff})
	line := color.RGBA{0x33, 0x4a, 0x33, 0xff}
	for x := 0; x <= int(worldWidth); x += cell {
		drawVLine(img, x, int(worldHeight), line)
	}
	for y := 0; y <= int(worldHeight); y += cell {
		drawHLine(img, y, int(worldWidth), line)
	}
	return img
}
