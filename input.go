package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Movement directions as they appear on the wire.
const (
	dirUp    = "up"
	dirDown  = "down"
	dirLeft  = "left"
	dirRight = "right"
)

// moveKeyOrder fixes the polling order so a single Update that sees several
// events applies them deterministically.
var moveKeyOrder = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD,
}

var moveKeyDirs = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    dirUp,
	ebiten.KeyArrowDown:  dirDown,
	ebiten.KeyArrowLeft:  dirLeft,
	ebiten.KeyArrowRight: dirRight,
	ebiten.KeyW:          dirUp,
	ebiten.KeyS:          dirDown,
	ebiten.KeyA:          dirLeft,
	ebiten.KeyD:          dirRight,
}

// heldKeys records currently held movement keys in press order; the last
// entry is the active one. A held key cannot fire key-down again without a
// release in between, so insertion order is true recency here.
var (
	heldKeys  []ebiten.Key
	activeDir string
)

// pressMoveKey marks a movement key held and makes its direction active.
// Repeat key-down events for an already held key change nothing.
func pressMoveKey(k ebiten.Key) (string, bool) {
	dir, ok := moveKeyDirs[k]
	if !ok {
		return "", false
	}
	for _, h := range heldKeys {
		if h == k {
			return "", false
		}
	}
	heldKeys = append(heldKeys, k)
	activeDir = dir
	return dir, true
}

// releaseMoveKey unmarks a held movement key. When other movement keys are
// still held the most recently pressed of them becomes active and its
// direction is re-emitted; when none remain the caller should send stop.
func releaseMoveKey(k ebiten.Key) (dir string, stop bool, changed bool) {
	if _, ok := moveKeyDirs[k]; !ok {
		return "", false, false
	}
	found := false
	for i, h := range heldKeys {
		if h == k {
			heldKeys = append(heldKeys[:i], heldKeys[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return "", false, false
	}
	if len(heldKeys) == 0 {
		activeDir = ""
		return "", true, true
	}
	activeDir = moveKeyDirs[heldKeys[len(heldKeys)-1]]
	return activeDir, false, true
}

func resetInput() {
	heldKeys = heldKeys[:0]
	activeDir = ""
}

// pollInput translates this frame's key events into move/stop commands.
func pollInput() {
	for _, k := range moveKeyOrder {
		if inpututil.IsKeyJustPressed(k) {
			if dir, ok := pressMoveKey(k); ok {
				sendMove(dir)
			}
		}
		if inpututil.IsKeyJustReleased(k) {
			dir, stop, changed := releaseMoveKey(k)
			if !changed {
				continue
			}
			if stop {
				sendStop()
			} else {
				sendMove(dir)
			}
		}
	}
}
