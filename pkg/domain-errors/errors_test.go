package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	cause := errors.New("disk on fire")

	assert.Equal(t, CodeInternal, CodeOf(cause))
	assert.Equal(t, CodeNotFound, CodeOf(New(CodeNotFound, "missing")))
	assert.Equal(t, CodeBadRequest, CodeOf(fmt.Errorf("outer: %w", Wrap(cause, CodeBadRequest, "bad"))))
	assert.False(t, HasCode(nil, CodeInternal))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, CodeInternal, "failed to read history")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to read history: boom", err.Error())
}
