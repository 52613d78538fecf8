package main

import "sync"

// Facing values as they appear on the wire.
const (
	facingNorth = "north"
	facingSouth = "south"
	facingEast  = "east"
	facingWest  = "west"
)

// Player is one avatar in the world, local or remote. The server owns the
// truth; this record is whatever the last message said about the player.
type Player struct {
	ID             string  `json:"id"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Facing         string  `json:"facing"`
	Avatar         string  `json:"avatar"`
	AnimationFrame int     `json:"animationFrame"`
	Username       string  `json:"username"`
}

var (
	players   = make(map[string]Player)
	playersMu sync.RWMutex

	// localID is set once on a successful join and read-only after.
	localID   string
	localIDMu sync.RWMutex
)

func setLocalID(id string) {
	localIDMu.Lock()
	localID = id
	localIDMu.Unlock()
}

func getLocalID() string {
	localIDMu.RLock()
	defer localIDMu.RUnlock()
	return localID
}

// localPlayer returns the record for our own player, if known.
func localPlayer() (Player, bool) {
	id := getLocalID()
	if id == "" {
		return Player{}, false
	}
	playersMu.RLock()
	defer playersMu.RUnlock()
	p, ok := players[id]
	return p, ok
}

// replacePlayers swaps in a full registry snapshot from a join result.
func replacePlayers(m map[string]Player) {
	playersMu.Lock()
	players = make(map[string]Player, len(m))
	for id, p := range m {
		players[id] = p
	}
	playersMu.Unlock()
}

func upsertPlayer(p Player) {
	playersMu.Lock()
	players[p.ID] = p
	playersMu.Unlock()
}

// mergePlayers overwrites registry entries by id. Batches may be partial.
func mergePlayers(m map[string]Player) {
	playersMu.Lock()
	for id, p := range m {
		players[id] = p
	}
	playersMu.Unlock()
}

// removePlayer deletes a player by id. Removing an unknown id is a no-op.
func removePlayer(id string) {
	playersMu.Lock()
	delete(players, id)
	playersMu.Unlock()
}

func getPlayers() []Player {
	playersMu.RLock()
	defer playersMu.RUnlock()
	out := make([]Player, 0, len(players))
	for _, p := range players {
		out = append(out, p)
	}
	return out
}

func playerCount() int {
	playersMu.RLock()
	defer playersMu.RUnlock()
	return len(players)
}
