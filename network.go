package main

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

var (
	wsConn *websocket.Conn
	wsMu   sync.Mutex

	connected   atomic.Bool
	connectedAt time.Time
	netBytes    atomic.Int64

	// netEvents carries raw inbound messages from the read loop to the game
	// loop, which drains them in arrival order at the top of each Update.
	netEvents = make(chan []byte, 256)
)

// connectGame dials the server and sends the join request. There is no
// reconnection: once the socket dies the session stays disconnected.
func connectGame(ctx context.Context, endpoint string) error {
	dialCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, endpoint, nil)
	if err != nil {
		return err
	}
	wsMu.Lock()
	wsConn = conn
	wsMu.Unlock()
	connectedAt = time.Now()
	connected.Store(true)
	logInfo("connected to %s", endpoint)

	sendAction(joinGameRequest{Action: "join_game", Username: playerName})

	go readLoop(ctx, conn)
	return nil
}

// sendAction marshals and writes one message if the connection is open.
// Otherwise the message is dropped; there is no queue and no retry.
func sendAction(v interface{}) {
	if !connected.Load() {
		logDebug("drop outbound message, not connected")
		return
	}
	wsMu.Lock()
	conn := wsConn
	if conn == nil {
		wsMu.Unlock()
		return
	}
	err := conn.WriteJSON(v)
	wsMu.Unlock()
	if err != nil {
		logError("send: %v", err)
	}
}

func sendMove(direction string) {
	sendAction(moveRequest{Action: "move", Direction: direction})
}

func sendStop() {
	sendAction(stopRequest{Action: "stop"})
}

// readLoop delivers inbound messages to the game loop until the socket
// closes or the context is canceled. Socket death is terminal.
func readLoop(ctx context.Context, conn *websocket.Conn) {
	defer markDisconnected()
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				logError("connection closed: %v", err)
				notifyConnectionError("The connection to the server was lost.")
			}
			return
		}
		netBytes.Add(int64(len(data)))
		select {
		case netEvents <- data:
		case <-ctx.Done():
			return
		}
	}
}

func markDisconnected() {
	connected.Store(false)
	wsMu.Lock()
	if wsConn != nil {
		wsConn.Close()
	}
	wsMu.Unlock()
}

// drainNetEvents dispatches every message that arrived since the previous
// frame, each one fully before the next.
func drainNetEvents() {
	for {
		select {
		case data := <-netEvents:
			dispatchMessage(data)
		default:
			return
		}
	}
}

// connectionUptime reports how long the current session has been up, zero
// when never connected.
func connectionUptime() time.Duration {
	if connectedAt.IsZero() {
		return 0
	}
	return time.Since(connectedAt)
}
