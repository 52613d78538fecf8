package main

import (
	"encoding/json"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

type Settings struct {
	Vsync           bool `json:"vsync"`
	Linear          bool `json:"linear"`
	ShowNames       bool `json:"showNames"`
	DebugHUD        bool `json:"debugHUD"`
	ErrorPopups     bool `json:"errorPopups"`
	DiscordPresence bool `json:"discordPresence"`
}

var gs = Settings{
	Vsync:       true,
	ShowNames:   true,
	ErrorPopups: true,
}

var (
	settingsDirty bool
	drawFilter    = ebiten.FilterNearest
)

const settingsPath = "settings.json"

// loadSettings reads settings.json into gs. A missing or unreadable file
// leaves the defaults in place and marks them dirty so the save loop
// persists them.
func loadSettings() bool {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		settingsDirty = true
		return false
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		logError("parse %s: %v", settingsPath, err)
		settingsDirty = true
		return false
	}
	gs = s
	return true
}

func applySettings() {
	if gs.Linear {
		drawFilter = ebiten.FilterLinear
	} else {
		drawFilter = ebiten.FilterNearest
	}
	ebiten.SetVsyncEnabled(gs.Vsync)
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.WriteFile(settingsPath, data, 0644); err != nil {
		logError("save settings: %v", err)
	}
}
