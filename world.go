package main

import "github.com/sqweek/dialog"

// World dimensions in pixels. The server's world map is fixed size.
const (
	worldWidth  = 2048.0
	worldHeight = 2048.0
)

// handleJoinResult applies the full join snapshot: identity, every player,
// every avatar. A rejected join is logged and the session never becomes
// playable; there is no retry.
func handleJoinResult(m joinGameResult) {
	if !m.Success {
		logError("join rejected: %s", m.Error)
		if gs.ErrorPopups {
			go func(reason string) {
				dialog.Message("The server rejected the join request:\n%s", reason).Title("Join failed").Error()
			}(m.Error)
		}
		return
	}
	setLocalID(m.PlayerID)
	replacePlayers(m.Players)
	replaceAvatars(m.Avatars)
	logInfo("joined as %s with %d players", m.PlayerID, playerCount())

	go preloadAvatars()
	recomputeCameraTarget()
	snapCamera()
}

func handlePlayerJoined(m playerJoinedMsg) {
	upsertPlayer(m.Player)
	upsertAvatar(m.Avatar)
	// Already-decoded frames make this a cheap no-op.
	go preloadAvatars()
}

// handlePlayersMoved merges a movement batch. Batches may be partial; when
// our own player is among them the camera chases the new position.
func handlePlayersMoved(m playersMovedMsg) {
	mergePlayers(m.Players)
	if _, ok := m.Players[getLocalID()]; ok {
		recomputeCameraTarget()
	}
}

func handlePlayerLeft(m playerLeftMsg) {
	removePlayer(m.PlayerID)
}

// notifyConnectionError surfaces a terminal connection failure to the user.
func notifyConnectionError(detail string) {
	if !gs.ErrorPopups {
		return
	}
	go func() {
		dialog.Message("%s\nRestart the client to rejoin.", detail).Title("Disconnected").Error()
	}()
}
