package main

import (
	"strconv"
	"testing"
)

func TestDiscordAppIDIsValidSnowflake(t *testing.T) {
	id, err := strconv.ParseUint(discordAppID, 10, 64)
	if err != nil {
		t.Fatalf("application id %q is not numeric: %v", discordAppID, err)
	}
	if id == 0 {
		t.Fatal("application id must be non-zero")
	}
}
