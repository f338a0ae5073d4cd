package server

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/zucenko/mirrorfield/engine"
	"github.com/zucenko/mirrorfield/model"
	"time"
)

type CipherServer struct {
	Config   engine.Config
	Key      []byte
	Sessions map[uuid.UUID]*CipherSession
	Requests chan SessionRequest
	Closed   chan uuid.UUID
	Upgrader *websocket.Upgrader
	Timeout  time.Duration
}

type CipherSessionState int

const (
	CS_NEW CipherSessionState = iota
	CS_RUN
	CS_ERR
	CS_OVER
)

// CipherSession owns one engine. Only its Loop goroutine touches it.
type CipherSession struct {
	Id     uuid.UUID
	State  CipherSessionState
	Engine *engine.Engine
	Conn   *websocket.Conn
	Server *CipherServer

	Requests       chan model.ClientMessage
	MessagesToSend chan model.ServerMessage
	Errors         chan error
	Over           chan struct{}

	DebugInMessages  int
	DebugOutMessages int
	DebugChars       int
	DebugLastMessage time.Time
}
