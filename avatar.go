package main

import "sync"

// Avatar describes one avatar's walk cycle: an ordered list of frame images
// per facing. Avatars arrive with the join snapshot or with player_joined
// and live for the whole session.
type Avatar struct {
	Name   string              `json:"name"`
	Frames map[string][]string `json:"frames"`
}

var (
	avatars   = make(map[string]*Avatar)
	avatarsMu sync.RWMutex
)

func replaceAvatars(m map[string]*Avatar) {
	avatarsMu.Lock()
	avatars = make(map[string]*Avatar, len(m))
	for name, a := range m {
		if a == nil {
			continue
		}
		avatars[name] = a
	}
	avatarsMu.Unlock()
}

func upsertAvatar(a *Avatar) {
	if a == nil || a.Name == "" {
		return
	}
	avatarsMu.Lock()
	avatars[a.Name] = a
	avatarsMu.Unlock()
}

func getAvatar(name string) *Avatar {
	avatarsMu.RLock()
	defer avatarsMu.RUnlock()
	return avatars[name]
}

func getAvatars() []*Avatar {
	avatarsMu.RLock()
	defer avatarsMu.RUnlock()
	out := make([]*Avatar, 0, len(avatars))
	for _, a := range avatars {
		out = append(out, a)
	}
	return out
}

// resolveFacing picks the frame list for a facing. Avatars only carry east
// frames for the lateral facings; west reuses them mirrored at draw time.
func resolveFacing(a *Avatar, facing string) (frames []string, source string, mirrored bool) {
	if a == nil {
		return nil, facing, false
	}
	if f := a.Frames[facing]; len(f) > 0 {
		return f, facing, false
	}
	if facing == facingWest {
		if f := a.Frames[facingEast]; len(f) > 0 {
			return f, facingEast, true
		}
	}
	return nil, facing, false
}

// frameIndex clamps a player's animation frame to the sequence, falling back
// to frame 0 when the server's index has no data.
func frameIndex(frames []string, idx int) (int, bool) {
	if len(frames) == 0 {
		return 0, false
	}
	if idx < 0 || idx >= len(frames) {
		return 0, true
	}
	return idx, true
}
