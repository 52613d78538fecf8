package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
)

var (
	server     string
	playerName string
	debugMode  bool
)

func main() {
	flag.StringVar(&server, "server", "ws://localhost:8080/ws", "game server websocket endpoint")
	flag.StringVar(&playerName, "name", "Wanderer", "display name sent with the join request")
	flag.BoolVar(&debugMode, "debug", false, "verbose/debug logging")
	flag.Parse()

	setupLogging(debugMode)
	defer syncLogging()
	loadSettings()
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if gs.DiscordPresence {
		initDiscordRPC(ctx)
	}

	go func() {
		if err := connectGame(ctx, server); err != nil {
			logError("connect %s: %v", server, err)
			notifyConnectionError("Could not reach the server.")
		}
	}()

	runGame(ctx)
	cancel()
}
