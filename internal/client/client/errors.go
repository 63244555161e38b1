package client

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")
)

// FieldError is one entry of a validation failure reported by the server.
type FieldError struct {
	Value string `json:"value"`
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// APIError is a non-success answer from the server. Message carries the
// server's "error" text (or the plain-text body), Fields its validation
// errors.
type APIError struct {
	Status  int
	Message string
	Fields  []FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Param+": "+f.Msg)
	}
	return fmt.Sprintf("%s (status %d)", strings.Join(msgs, "; "), e.Status)
}
