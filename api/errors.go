package api

import "fmt"

// Error is the structured failure produced for any non-2xx response or
// transport failure. Status is 0 when no response was received at all
// (connection refused, timeout, DNS failure). Message carries the backend's
// "message" body field when one was supplied.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("no response: %s", e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("http %d", e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// NoResponse reports whether the request never produced an HTTP response.
func (e *Error) NoResponse() bool {
	return e.Status == 0
}
