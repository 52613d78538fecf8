package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"runtime"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/remeh/sizedwaitgroup"
)

// frameKey identifies one decoded walk-cycle frame.
type frameKey struct {
	avatar string
	facing string
	index  int
}

type frameState int

const (
	framePending frameState = iota
	frameReady
	frameFailed
)

// frameEntry tracks the decode state of a single frame. The ebiten image is
// built from src on first draw so decoding can run off the render thread.
type frameEntry struct {
	state frameState
	src   image.Image
	img   *ebiten.Image
}

var (
	frameMu    sync.Mutex
	frameCache = make(map[frameKey]*frameEntry)
)

// decodeFrameData turns one frame payload into an image. Payloads are data
// URLs or bare base64 in practice; http(s) URLs are fetched as a fallback.
func decodeFrameData(data string) (image.Image, error) {
	if data == "" {
		return nil, fmt.Errorf("empty frame data")
	}
	var raw []byte
	switch {
	case strings.HasPrefix(data, "data:"):
		i := strings.IndexByte(data, ',')
		if i < 0 {
			return nil, fmt.Errorf("malformed data URL")
		}
		var err error
		raw, err = base64.StdEncoding.DecodeString(data[i+1:])
		if err != nil {
			return nil, fmt.Errorf("decode data URL: %w", err)
		}
	case strings.HasPrefix(data, "http://"), strings.HasPrefix(data, "https://"):
		resp, err := http.Get(data)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("GET %v: %v", data, resp.Status)
		}
		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	default:
		var err error
		raw, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("decode frame base64: %w", err)
		}
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode frame image: %w", err)
	}
	return img, nil
}

// loadFrame decodes one frame into the cache. Frames that already finished
// (ready or failed) are left alone so repeated preloads are cheap no-ops.
func loadFrame(key frameKey, data string) {
	frameMu.Lock()
	if _, ok := frameCache[key]; ok {
		// Already decoded or being decoded by someone else.
		frameMu.Unlock()
		return
	}
	frameCache[key] = &frameEntry{state: framePending}
	frameMu.Unlock()

	img, err := decodeFrameData(data)

	frameMu.Lock()
	e := frameCache[key]
	if err != nil {
		e.state = frameFailed
		frameMu.Unlock()
		logError("decode frame %s/%s[%d]: %v", key.avatar, key.facing, key.index, err)
		return
	}
	e.state = frameReady
	e.src = img
	frameMu.Unlock()
}

// preloadAvatars decodes every frame of every known avatar that is not
// already in the cache, a bounded number at a time.
func preloadAvatars() {
	wg := sizedwaitgroup.New(runtime.NumCPU())
	for _, a := range getAvatars() {
		for facing, frames := range a.Frames {
			for i, data := range frames {
				key := frameKey{avatar: a.Name, facing: facing, index: i}
				frameMu.Lock()
				_, seen := frameCache[key]
				frameMu.Unlock()
				if seen {
					continue
				}
				wg.Add()
				go func(key frameKey, data string) {
					defer wg.Done()
					loadFrame(key, data)
				}(key, data)
			}
		}
	}
	wg.Wait()
}

// frameImage returns the drawable image for a frame if it is ready. A miss
// kicks off an asynchronous decode and reports not-ready; the sprite pops in
// on a later frame.
func frameImage(key frameKey) (*ebiten.Image, bool) {
	frameMu.Lock()
	e, ok := frameCache[key]
	if ok && e.state == frameReady {
		if e.img == nil {
			e.img = ebiten.NewImageFromImage(e.src)
		}
		img := e.img
		frameMu.Unlock()
		return img, true
	}
	if ok {
		// pending or failed
		frameMu.Unlock()
		return nil, false
	}
	frameMu.Unlock()

	// No cache entry yet: only claim one once the frame data is in hand, so
	// an avatar that shows up later can still be decoded by a preload.
	a := getAvatar(key.avatar)
	if a == nil {
		return nil, false
	}
	frames := a.Frames[key.facing]
	if key.index < 0 || key.index >= len(frames) {
		return nil, false
	}
	data := frames[key.index]

	frameMu.Lock()
	if _, exists := frameCache[key]; exists {
		frameMu.Unlock()
		return nil, false
	}
	frameCache[key] = &frameEntry{state: framePending}
	frameMu.Unlock()

	go func() {
		img, err := decodeFrameData(data)
		frameMu.Lock()
		defer frameMu.Unlock()
		e := frameCache[key]
		if err != nil {
			e.state = frameFailed
			logError("decode frame %s/%s[%d]: %v", key.avatar, key.facing, key.index, err)
			return
		}
		e.state = frameReady
		e.src = img
	}()
	return nil, false
}

func clearFrameCache() {
	frameMu.Lock()
	frameCache = make(map[frameKey]*frameEntry)
	frameMu.Unlock()
}
