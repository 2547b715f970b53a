package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefinitionImplementsError(t *testing.T) {
	var err error = AlreadyCheckedIn
	assert.Equal(t, AlreadyCheckedIn.Message, err.Error())
}

func TestLookupCoversAllDefinitions(t *testing.T) {
	for code, def := range Lookup {
		assert.Equal(t, code, def.Code)
		assert.NotEmpty(t, def.Message, "code %s has no message", code)
	}
}

func TestGet(t *testing.T) {
	assert.Equal(t, NotCheckedIn, Get("NOT_CHECKED_IN"))

	unknown := Get("NO_SUCH_CODE")
	assert.Equal(t, "NO_SUCH_CODE", unknown.Code)
	assert.Equal(t, "Unexpected error", unknown.Message)
}
