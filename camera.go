package main

// The camera is only touched from the game loop (message handlers drain and
// the per-frame step both run inside Update), so no lock guards it.
var (
	camX, camY             float64
	camTargetX, camTargetY float64
)

// cameraSmoothing is the fraction of the remaining distance to the target
// closed each frame. Stable for any value in (0, 1].
const cameraSmoothing = 0.1

// clampOffset keeps a camera offset inside [0, upper]. The min against the
// upper bound is applied first: when the viewport is larger than the world
// the upper bound goes negative and the result pins to 0, leaving
// out-of-world margin visible on the far side.
func clampOffset(v, upper float64) float64 {
	if v > upper {
		v = upper
	}
	if v < 0 {
		v = 0
	}
	return v
}

// recomputeCameraTarget centers the target on the local player, clamped to
// world bounds. A no-op until the join result tells us who we are.
func recomputeCameraTarget() {
	p, ok := localPlayer()
	if !ok {
		return
	}
	vw, vh := viewportSize()
	camTargetX = clampOffset(p.X-vw/2, worldWidth-vw)
	camTargetY = clampOffset(p.Y-vh/2, worldHeight-vh)
}

// snapCamera jumps straight to the target, used right after joining so the
// first frame is not a long pan across the world.
func snapCamera() {
	camX, camY = camTargetX, camTargetY
}

// stepCamera advances the offset toward the target by first-order
// exponential smoothing. It converges without ever overshooting.
func stepCamera() {
	camX += (camTargetX - camX) * cameraSmoothing
	camY += (camTargetY - camY) * cameraSmoothing
}
