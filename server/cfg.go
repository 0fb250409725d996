package server

import "fmt"

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	SETUP_READY ResponseCode = iota
	CARD_NOT_FOUND
	SEED_INVALID
	SETUP_FAILED
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case SETUP_READY:
		return HTTP_SUCCESS
	case CARD_NOT_FOUND:
		return HTTP_NOT_FOUND
	case SEED_INVALID:
		return HTTP_BAD_REQUEST
	case SETUP_FAILED:
		return HTTP_SERVER_ERR
	default:
		panic(h)
	}
}

func (h ResponseCode) Name() string {
	switch h {
	case SETUP_READY:
		return "SETUP_READY"
	case CARD_NOT_FOUND:
		return "CARD_NOT_FOUND"
	case SEED_INVALID:
		return "SEED_INVALID"
	case SETUP_FAILED:
		return "SETUP_FAILED"
	default:
		return fmt.Sprintf("n/a:%d", h)
	}
}

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}
