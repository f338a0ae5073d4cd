package model

// ClientMessage carries bytes to run through a session's engine.
type ClientMessage struct {
	Data []byte
}

type ServerMessage struct {
	Data []byte
	// Field is the engine cursor after the batch.
	Field int
	Err   string
}
