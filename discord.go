package main

import (
	"context"
	"fmt"
	"time"

	client "github.com/hugolgst/rich-go/client"
)

// discordAppID is the application registered for gowander's presence.
const discordAppID = "1410952760122034196"

// initDiscordRPC publishes presence while the client runs. The player count
// refreshes every minute; failures only log.
func initDiscordRPC(ctx context.Context) {
	if err := client.Login(discordAppID); err != nil {
		logError("discord rpc login: %v", err)
		return
	}
	start := time.Now()
	setActivity := func() {
		if err := client.SetActivity(client.Activity{
			State:   fmt.Sprintf("%d players online", playerCount()),
			Details: "Wandering the world",
			Timestamps: &client.Timestamps{
				Start: &start,
			},
		}); err != nil {
			logError("discord rpc activity: %v", err)
		}
	}
	setActivity()
	go func() {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				client.Logout()
				return
			case <-t.C:
				setActivity()
			}
		}
	}()
}
