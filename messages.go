package main

import (
	"encoding/json"
	"fmt"
)

// Client to server actions. The server dictates these shapes; every message
// carries an "action" tag and the rest of the payload is action-specific.
type joinGameRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
}

type moveRequest struct {
	Action    string `json:"action"`
	Direction string `json:"direction"`
}

type stopRequest struct {
	Action string `json:"action"`
}

// Server to client messages.
type joinGameResult struct {
	Success  bool               `json:"success"`
	PlayerID string             `json:"playerId"`
	Players  map[string]Player  `json:"players"`
	Avatars  map[string]*Avatar `json:"avatars"`
	Error    string             `json:"error"`
}

type playerJoinedMsg struct {
	Player Player  `json:"player"`
	Avatar *Avatar `json:"avatar"`
}

type playersMovedMsg struct {
	Players map[string]Player `json:"players"`
}

type playerLeftMsg struct {
	PlayerID string `json:"playerId"`
}

// unknownMsg is the fallback variant for actions this client does not speak.
type unknownMsg struct {
	Action string
}

// decodeServerMessage parses one inbound message into its typed variant.
// The envelope is read first for the action tag, then the full payload is
// unmarshaled into the concrete shape for that tag.
func decodeServerMessage(data []byte) (interface{}, error) {
	var env struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Action == "" {
		return nil, fmt.Errorf("message missing action tag")
	}
	switch env.Action {
	case "join_game":
		var m joinGameResult
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode join_game: %w", err)
		}
		return m, nil
	case "player_joined":
		var m playerJoinedMsg
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode player_joined: %w", err)
		}
		return m, nil
	case "players_moved":
		var m playersMovedMsg
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode players_moved: %w", err)
		}
		return m, nil
	case "player_left":
		var m playerLeftMsg
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode player_left: %w", err)
		}
		return m, nil
	}
	return unknownMsg{Action: env.Action}, nil
}
