package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind is the classification assigned to every failed request. Callers branch
// on Kind, never on raw transport details.
type Kind string

const (
	// Unreachable means no response was received at all. The service may be
	// down; retrying later can help, fixing input cannot.
	Unreachable Kind = "unreachable"
	// InvalidCredentials is a 401 from the login endpoint specifically.
	InvalidCredentials Kind = "invalid_credentials"
	// SessionExpired is a 401 from any endpoint other than login. The session
	// is gone; the expiry watcher tears it down.
	SessionExpired Kind = "session_expired"
	// Forbidden is a 403.
	Forbidden Kind = "forbidden"
	// BadRequest is a 400.
	BadRequest Kind = "bad_request"
	// ValidationFailed is a 422 with field-level messages joined into one.
	ValidationFailed Kind = "validation_failed"
	// ServerFault is a 500.
	ServerFault Kind = "server_fault"
	// Unknown is any other failure, carrying server detail when present.
	Unknown Kind = "unknown"
)

// Error is the uniform failure value returned by every gateway call.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

// Error complies with the error interface.
func (e *Error) Error() string {
	return e.Message
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// detailPayload is the error body the service sends. detail is either a
// plain string or, for validation failures, a list of field errors.
type detailPayload struct {
	Detail json.RawMessage `json:"detail"`
}

type fieldError struct {
	Msg string `json:"msg"`
}

func serverDetail(body []byte) string {
	var payload detailPayload
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var msg string
	if json.Unmarshal(payload.Detail, &msg) == nil {
		return msg
	}
	var fields []fieldError
	if json.Unmarshal(payload.Detail, &fields) == nil {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			msgs = append(msgs, f.Msg)
		}
		return strings.Join(msgs, ", ")
	}
	return ""
}

// classify maps a failed HTTP response to exactly one Kind. login marks the
// login endpoint, whose 401 means bad credentials rather than a dead session.
func classify(status int, body []byte, login bool) *Error {
	detail := serverDetail(body)
	switch {
	case status == http.StatusUnauthorized && login:
		return &Error{Kind: InvalidCredentials, Message: "Invalid email or password.", Status: status}
	case status == http.StatusUnauthorized:
		return &Error{Kind: SessionExpired, Message: "Your session has expired. Please sign in again.", Status: status}
	case status == http.StatusUnprocessableEntity && detail != "":
		return &Error{Kind: ValidationFailed, Message: detail, Status: status}
	case status == http.StatusForbidden:
		return &Error{Kind: Forbidden, Message: "You are not authorized to perform this action.", Status: status}
	case status == http.StatusBadRequest:
		if detail == "" {
			detail = "Bad request. Please check your input."
		}
		return &Error{Kind: BadRequest, Message: detail, Status: status}
	case status == http.StatusInternalServerError:
		return &Error{Kind: ServerFault, Message: "Server error. Please try again in a moment.", Status: status}
	case detail != "":
		return &Error{Kind: Unknown, Message: detail, Status: status}
	default:
		return &Error{Kind: Unknown, Message: fmt.Sprintf("Server error (HTTP %d)", status), Status: status}
	}
}

// unreachableMessage is used when no response was received at all, which must
// read differently from every HTTP-level failure: it means "retry later".
const unreachableMessage = "Cannot connect to the FitFork service. Please make sure the backend is running."
