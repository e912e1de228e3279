package models

import (
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v4"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WSLocationUpdate is the payload a driver client sends on the ingest socket.
type WSLocationUpdate struct {
	VehicleID string  `json:"vehicle_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// WebSocketClient describes an authenticated socket peer.
type WebSocketClient struct {
	UserID string
	Role   string

	// writeMu serializes writes; gorilla connections allow one writer at a time
	writeMu sync.Mutex
}

// LockWrite acquires the client's write lock
func (c *WebSocketClient) LockWrite() { c.writeMu.Lock() }

// UnlockWrite releases the client's write lock
func (c *WebSocketClient) UnlockWrite() { c.writeMu.Unlock() }

// WebSocketClaims are the JWT claims carried on the socket handshake
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
