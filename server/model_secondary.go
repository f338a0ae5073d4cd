package server

import (
	"fmt"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	SESSION_READY ResponseCode = iota
	SESSION_INVALID
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case SESSION_READY:
		return HTTP_SUCCESS
	case SESSION_INVALID:
		return HTTP_SERVER_ERR
	default:
		panic(h)
	}
}

func (cs CipherSessionState) Name() string {
	switch cs {
	case CS_NEW:
		return "CS_NEW"
	case CS_RUN:
		return "CS_RUN"
	case CS_ERR:
		return "CS_ERR"
	case CS_OVER:
		return "CS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", cs)
	}
}

type SessionAwaiting struct {
	ResponseCode ResponseCode
	Session      *CipherSession
}

type SessionRequest struct {
	SessionAwaiting chan SessionAwaiting
}
