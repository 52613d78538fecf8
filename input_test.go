package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestPressMoveKeySetsActiveDirection(t *testing.T) {
	resetInput()
	dir, ok := pressMoveKey(ebiten.KeyArrowUp)
	if !ok || dir != dirUp {
		t.Fatalf("press up: got %q ok=%v", dir, ok)
	}
	if activeDir != dirUp {
		t.Fatalf("active dir = %q, want %q", activeDir, dirUp)
	}
}

func TestPressMoveKeyRepeatIgnored(t *testing.T) {
	resetInput()
	pressMoveKey(ebiten.KeyArrowLeft)
	if _, ok := pressMoveKey(ebiten.KeyArrowLeft); ok {
		t.Fatal("repeat key-down should not emit")
	}
	if len(heldKeys) != 1 {
		t.Fatalf("held keys = %d, want 1", len(heldKeys))
	}
}

func TestPressMoveKeyIgnoresUnknownKey(t *testing.T) {
	resetInput()
	if _, ok := pressMoveKey(ebiten.KeySpace); ok {
		t.Fatal("non-movement key should be ignored")
	}
}

func TestWASDMapping(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyW, dirUp},
		{ebiten.KeyS, dirDown},
		{ebiten.KeyA, dirLeft},
		{ebiten.KeyD, dirRight},
	}
	for _, tt := range tests {
		resetInput()
		dir, ok := pressMoveKey(tt.key)
		if !ok || dir != tt.want {
			t.Fatalf("press %v: got %q ok=%v, want %q", tt.key, dir, ok, tt.want)
		}
	}
}

// Holding up then right, releasing up must fall back to right; stop is only
// emitted once right is released too.
func TestReleaseFallsBackToMostRecentHeld(t *testing.T) {
	resetInput()
	pressMoveKey(ebiten.KeyArrowUp)
	pressMoveKey(ebiten.KeyArrowRight)
	if activeDir != dirRight {
		t.Fatalf("active dir = %q, want %q", activeDir, dirRight)
	}

	dir, stop, changed := releaseMoveKey(ebiten.KeyArrowUp)
	if !changed || stop {
		t.Fatalf("release up: dir=%q stop=%v changed=%v", dir, stop, changed)
	}
	if dir != dirRight {
		t.Fatalf("fallback dir = %q, want %q", dir, dirRight)
	}

	dir, stop, changed = releaseMoveKey(ebiten.KeyArrowRight)
	if !changed || !stop {
		t.Fatalf("release right: dir=%q stop=%v changed=%v", dir, stop, changed)
	}
	if activeDir != "" {
		t.Fatalf("active dir after stop = %q, want empty", activeDir)
	}
}

func TestReleaseNonActiveKeyKeepsMostRecent(t *testing.T) {
	resetInput()
	pressMoveKey(ebiten.KeyA)
	pressMoveKey(ebiten.KeyS)
	pressMoveKey(ebiten.KeyD)

	dir, stop, changed := releaseMoveKey(ebiten.KeyS)
	if !changed || stop || dir != dirRight {
		t.Fatalf("release middle key: dir=%q stop=%v changed=%v", dir, stop, changed)
	}
	if activeDir != dirRight {
		t.Fatalf("active dir = %q, want %q", activeDir, dirRight)
	}
}

func TestReleaseUnheldKeyIsNoop(t *testing.T) {
	resetInput()
	pressMoveKey(ebiten.KeyArrowDown)
	if _, _, changed := releaseMoveKey(ebiten.KeyArrowUp); changed {
		t.Fatal("releasing a key that is not held should change nothing")
	}
	if activeDir != dirDown {
		t.Fatalf("active dir = %q, want %q", activeDir, dirDown)
	}
}

func TestRepressAfterReleaseRestoresRecency(t *testing.T) {
	resetInput()
	pressMoveKey(ebiten.KeyW)
	pressMoveKey(ebiten.KeyD)
	releaseMoveKey(ebiten.KeyW)
	pressMoveKey(ebiten.KeyW)
	if activeDir != dirUp {
		t.Fatalf("active dir = %q, want %q", activeDir, dirUp)
	}
	// Now releasing W falls back to D again.
	dir, stop, changed := releaseMoveKey(ebiten.KeyW)
	if !changed || stop || dir != dirRight {
		t.Fatalf("release: dir=%q stop=%v changed=%v", dir, stop, changed)
	}
}

// For any sequence of press/release events the active direction must equal
// the direction of the most recently pressed key still held.
func TestActiveDirectionMatchesHeldRecord(t *testing.T) {
	type ev struct {
		key  ebiten.Key
		down bool
	}
	seq := []ev{
		{ebiten.KeyArrowUp, true},
		{ebiten.KeyArrowLeft, true},
		{ebiten.KeyArrowDown, true},
		{ebiten.KeyArrowLeft, false},
		{ebiten.KeyArrowDown, false},
		{ebiten.KeyW, true},
		{ebiten.KeyArrowUp, false},
		{ebiten.KeyW, false},
	}
	resetInput()
	for i, e := range seq {
		if e.down {
			pressMoveKey(e.key)
		} else {
			releaseMoveKey(e.key)
		}
		want := ""
		if n := len(heldKeys); n > 0 {
			want = moveKeyDirs[heldKeys[n-1]]
		}
		if activeDir != want {
			t.Fatalf("after event %d: active dir = %q, want %q", i, activeDir, want)
		}
	}
	if activeDir != "" {
		t.Fatalf("active dir at end = %q, want empty", activeDir)
	}
}
