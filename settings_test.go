package main

import (
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadSettingsFirstRunMarksDirty(t *testing.T) {
	t.Chdir(t.TempDir())
	settingsDirty = false
	if loadSettings() {
		t.Fatal("loadSettings succeeded with no settings file")
	}
	if !settingsDirty {
		t.Fatal("missing settings file should mark the defaults dirty")
	}
}

func TestLoadSettingsCorruptFileLogsAndMarksDirty(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile(settingsPath, []byte(`{"vsync":`), 0644); err != nil {
		t.Fatal(err)
	}

	core, logs := observer.New(zapcore.ErrorLevel)
	old := gameLog
	gameLog = zap.New(core).Sugar()
	defer func() { gameLog = old }()

	settingsDirty = false
	if loadSettings() {
		t.Fatal("loadSettings succeeded on a corrupt file")
	}
	if logs.Len() == 0 {
		t.Fatal("corrupt settings file was not logged")
	}
	if !settingsDirty {
		t.Fatal("corrupt settings file should mark the defaults dirty")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())
	defer func() { gs = Settings{Vsync: true, ShowNames: true, ErrorPopups: true} }()

	gs = Settings{
		Vsync:           true,
		Linear:          true,
		DebugHUD:        true,
		DiscordPresence: true,
	}
	saveSettings()

	gs = Settings{}
	settingsDirty = false
	if !loadSettings() {
		t.Fatal("loadSettings failed on a freshly saved file")
	}
	if !gs.Vsync || !gs.Linear || !gs.DebugHUD || !gs.DiscordPresence || gs.ShowNames || gs.ErrorPopups {
		t.Fatalf("settings after round trip = %+v", gs)
	}
	if settingsDirty {
		t.Fatal("a clean load should not mark settings dirty")
	}
}
