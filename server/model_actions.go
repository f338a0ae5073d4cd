package server

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mirrorfield/engine"
	"github.com/zucenko/mirrorfield/model"
	"net"
	"net/http"
	"time"
)

// NewCipherServer checks key against cfg. Every session starts from this
// key in its initial state.
func NewCipherServer(cfg engine.Config, key []byte) (*CipherServer, error) {
	if err := engine.New(cfg).Load(key); err != nil {
		return nil, fmt.Errorf("cipher server key: %w", err)
	}
	return &CipherServer{
		Config:   cfg,
		Key:      key,
		Sessions: make(map[uuid.UUID]*CipherSession),
		Requests: make(chan SessionRequest),
		Closed:   make(chan uuid.UUID),
		Upgrader: &websocket.Upgrader{},
		Timeout:  200 * time.Millisecond,
	}, nil
}

func (s *CipherServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - connection received")

		// buffered so Loop never waits on a handler that gave up
		sas := make(chan SessionAwaiting, 1)
		select {
		case s.Requests <- SessionRequest{SessionAwaiting: sas}:
		case <-time.After(s.Timeout):
			log.Warn("SessionRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var sa SessionAwaiting
		select {
		case sa = <-sas:
			if sa.ResponseCode != SESSION_READY {
				log.Errorf("HandleHttpCall session not ready code:%d", sa.ResponseCode)
				w.WriteHeader(sa.ResponseCode.ToHttp())
				return
			}
		case <-time.After(s.Timeout):
			log.Warnf("HandleHttpCall SessionAwaiting <- TIMEOUTED")
			go s.abandon(sas)
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already answered the client
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			sa.Session.Close()
			return
		}
		defer con.Close()

		sa.Session.Attach(con)
		log.WithField("session", sa.Session.Id).Info("HandleHttpCall wait for session over")
		<-sa.Session.Over
	}
}

// abandon closes the session Loop still delivers after the handler gave up
// waiting for it. Loop answers every request it took, so this returns.
func (s *CipherServer) abandon(sas chan SessionAwaiting) {
	sa := <-sas
	if sa.Session != nil {
		log.WithField("session", sa.Session.Id).Warn("closing session nobody waited for")
		sa.Session.Close()
	}
}

// Loop owns the session table. It returns when ctx is done.
func (s *CipherServer) Loop(ctx context.Context) {
	log.Printf("CipherServer.Loop starting")
	for {
		select {
		case req := <-s.Requests:
			cs, err := s.newSession()
			if err != nil {
				log.Errorf("CipherServer.Loop cannot load key: %v", err)
				Errors.WithLabelValues("key").Inc()
				req.SessionAwaiting <- SessionAwaiting{ResponseCode: SESSION_INVALID}
				continue
			}
			s.Sessions[cs.Id] = cs
			Sessions.Inc()
			go cs.Loop()
			req.SessionAwaiting <- SessionAwaiting{ResponseCode: SESSION_READY, Session: cs}
		case id := <-s.Closed:
			if _, ok := s.Sessions[id]; ok {
				delete(s.Sessions, id)
				Sessions.Dec()
			}
		case <-ctx.Done():
			log.Printf("CipherServer.Loop stopped with %d open sessions", len(s.Sessions))
			for _, cs := range s.Sessions {
				cs.Close()
			}
			return
		}
	}
}

func (s *CipherServer) newSession() (*CipherSession, error) {
	e := engine.New(s.Config)
	if err := e.Load(s.Key); err != nil {
		return nil, err
	}
	return &CipherSession{
		Id:             uuid.New(),
		State:          CS_NEW,
		Engine:         e,
		Server:         s,
		Requests:       make(chan model.ClientMessage),
		MessagesToSend: make(chan model.ServerMessage, 10),
		Errors:         make(chan error, 1),
		Over:           make(chan struct{}),
	}, nil
}

// Attach starts reading and writing con for the session.
func (cs *CipherSession) Attach(con *websocket.Conn) {
	cs.Conn = con
	con.SetPingHandler(
		func(message string) error {
			err := con.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	go cs.LoopChannelRead()
	go cs.LoopChannelWrite()
}

var errDecode = errors.New("cant decode client message")

// Close ends the session as if the peer had gone away.
func (cs *CipherSession) Close() {
	cs.fail(errors.New("session closed"))
}

// fail reports err to Loop. Only the first error counts.
func (cs *CipherSession) fail(err error) {
	select {
	case cs.Errors <- err:
	default:
	}
}

func (cs *CipherSession) Loop() {
	logger := log.WithField("session", cs.Id)
	logger.Info("CipherSession.Loop start")
	cs.State = CS_RUN
	for {
		select {
		case cm := <-cs.Requests:
			select {
			case cs.MessagesToSend <- cs.Crypt(cm):
			case err := <-cs.Errors:
				cs.finish(logger, err)
				return
			}
		case err := <-cs.Errors:
			cs.finish(logger, err)
			return
		}
	}
}

func (cs *CipherSession) finish(logger *log.Entry, err error) {
	cs.State = CS_OVER
	if errors.Is(err, errDecode) {
		cs.State = CS_ERR
	}
	logger.WithField("state", cs.State.Name()).Infof("CipherSession.Loop end: %v", err)
	close(cs.Over)
	select {
	case cs.Server.Closed <- cs.Id:
	case <-time.After(cs.Server.Timeout):
		logger.Warn("CipherSession.Loop server did not take close")
	}
}

// Crypt runs one client message through the session engine.
func (cs *CipherSession) Crypt(cm model.ClientMessage) model.ServerMessage {
	out := make([]byte, len(cm.Data))
	n, err := cs.Engine.Crypt(out, cm.Data)
	cs.DebugChars += n
	Chars.Add(float64(n))
	sm := model.ServerMessage{Data: out[:n], Field: cs.Engine.Field()}
	if err != nil {
		Errors.WithLabelValues(errorKind(err)).Inc()
		sm.Err = err.Error()
	}
	return sm
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrNotInAlphabet):
		return "lookup"
	case errors.Is(err, engine.ErrNotReady):
		return "not_ready"
	default:
		return "internal"
	}
}

func (cs *CipherSession) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED")
loop:
	for {
		_, r, err := cs.Conn.NextReader()
		if err != nil {
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			cs.fail(err)
			break loop
		}
		cm := model.ClientMessage{}
		if err = gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warn("cant decode")
			Errors.WithLabelValues("decode").Inc()
			cs.fail(fmt.Errorf("%w: %v", errDecode, err))
			break loop
		}
		cs.DebugLastMessage = time.Now()
		cs.DebugInMessages++

		select {
		case cs.Requests <- cm:
		case <-cs.Over:
			break loop
		}
	}
	log.Printf("LoopChannelRead ENDED")
}

// this function only consumes. no worries about full buffer stuck
func (cs *CipherSession) LoopChannelWrite() {
	log.Printf("CipherSession.LoopChannelWrite STARTED")
loop:
	for {
		select {
		case mes := <-cs.MessagesToSend:
			w, err := cs.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("CipherSession.LoopChannelWrite cant get writer %v", err)
				cs.fail(err)
				break loop
			}
			if err = gob.NewEncoder(w).Encode(mes); err != nil {
				log.Warnf("CipherSession.LoopChannelWrite cant encode %v", err)
				cs.fail(err)
				break loop
			}
			if err = w.Close(); err != nil {
				log.Warnf("CipherSession.LoopChannelWrite cant flush %v", err)
				cs.fail(err)
				break loop
			}
			cs.DebugOutMessages++
		case <-cs.Over:
			break loop
		}
	}
	log.Printf("LoopChannelWrite ENDED")
}
