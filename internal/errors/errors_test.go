package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureKindLabels(t *testing.T) {
	assert.Equal(t, "network", FailureKind(NewNetworkError("down", nil)))
	assert.Equal(t, "http_status", FailureKind(NewHTTPStatusError("500", nil)))
	assert.Equal(t, "parse", FailureKind(NewParseError("bad body", nil)))
	assert.Equal(t, "command_rejected", FailureKind(NewCommandRejectedError("nope", nil)))

	// Untyped and API-surface errors collapse to internal.
	assert.Equal(t, "internal", FailureKind(fmt.Errorf("plain")))
	assert.Equal(t, "internal", FailureKind(NewValidationError("bad input", nil)))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("missing", nil)))
	assert.True(t, IsValidation(NewValidationError("bad", nil)))
	assert.True(t, IsParse(NewParseError("bad", nil)))
	assert.True(t, IsCommandRejected(NewCommandRejectedError("no", nil)))

	assert.False(t, IsNotFound(fmt.Errorf("plain")))
	assert.False(t, IsCommandRejected(NewParseError("bad", nil)))
}

func TestErrorFormattingAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewNetworkError("sensor request failed", cause)

	assert.Contains(t, err.Error(), "network")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, err.Unwrap())

	withID := err.WithRequestID("req_123")
	assert.Equal(t, "req_123", withID.RequestID)
}
