package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLoginUnauthorized(t *testing.T) {
	err := classify(401, nil, true)
	assert.Equal(t, InvalidCredentials, err.Kind)
	assert.Equal(t, "Invalid email or password.", err.Message)
}

func TestClassifyNonLoginUnauthorized(t *testing.T) {
	err := classify(401, nil, false)
	assert.Equal(t, SessionExpired, err.Kind)
}

func TestClassifyValidationJoinsFieldMessages(t *testing.T) {
	body := []byte(`{"detail":[{"msg":"height required"},{"msg":"age must be positive"}]}`)
	err := classify(422, body, false)
	assert.Equal(t, ValidationFailed, err.Kind)
	assert.Equal(t, "height required, age must be positive", err.Message)
}

func TestClassifyValidationStringDetail(t *testing.T) {
	err := classify(422, []byte(`{"detail":"profile is malformed"}`), false)
	assert.Equal(t, ValidationFailed, err.Kind)
	assert.Equal(t, "profile is malformed", err.Message)
}

func TestClassifyStatuses(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    Kind
		message string
	}{
		{"forbidden", 403, "", Forbidden, "You are not authorized to perform this action."},
		{"bad request with detail", 400, `{"detail":"missing query"}`, BadRequest, "missing query"},
		{"bad request without detail", 400, "", BadRequest, "Bad request. Please check your input."},
		{"server fault", 500, "", ServerFault, "Server error. Please try again in a moment."},
		{"unknown with detail", 418, `{"detail":"teapot"}`, Unknown, "teapot"},
		{"unknown without detail", 418, "", Unknown, "Server error (HTTP 418)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classify(tc.status, []byte(tc.body), false)
			assert.Equal(t, tc.kind, err.Kind)
			assert.Equal(t, tc.message, err.Message)
		})
	}
}

func TestIsKind(t *testing.T) {
	err := classify(401, nil, false)
	assert.True(t, IsKind(err, SessionExpired))
	assert.False(t, IsKind(err, InvalidCredentials))
	assert.False(t, IsKind(errors.New("plain"), SessionExpired))
}
