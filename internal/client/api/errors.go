package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport and decode failures: the request never
// produced a usable answer from the service. Match with errors.Is.
var ErrUnavailable = errors.New("service unavailable")

// RequestError is a failure the service itself reported, either as a
// {success:false, message} envelope or a bare non-2xx status. Message is
// safe to show to the user verbatim.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// UserMessage converts any client error into the text shown next to the
// action that triggered it. Service rejections surface verbatim; everything
// else collapses into the fallback, so callers never distinguish "server
// said no" from "network failed" except by message text.
func UserMessage(err error, fallback string) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
