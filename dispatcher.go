package main

import (
	"time"

	"golang.org/x/time/rate"
)

// unknownActionLog throttles complaints about actions this client does not
// recognize so a chatty server cannot flood the log.
var unknownActionLog = rate.Sometimes{First: 5, Interval: 30 * time.Second}

// dispatchMessage decodes one raw server message and applies it. Exactly one
// handler runs per message; malformed or unrecognized messages leave all
// state untouched.
func dispatchMessage(data []byte) {
	msg, err := decodeServerMessage(data)
	if err != nil {
		logError("bad server message: %v", err)
		return
	}
	switch m := msg.(type) {
	case joinGameResult:
		handleJoinResult(m)
	case playerJoinedMsg:
		handlePlayerJoined(m)
	case playersMovedMsg:
		handlePlayersMoved(m)
	case playerLeftMsg:
		handlePlayerLeft(m)
	case unknownMsg:
		unknownActionLog.Do(func() {
			logError("unknown action %q ignored", m.Action)
		})
	}
}
