package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(0))
	assert.True(t, ValidID(MaxRows-1))
	assert.False(t, ValidID(-1))
	assert.False(t, ValidID(MaxRows))
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, Err(&buf, nil))
	assert.Empty(t, buf.String())

	err := errors.New("boom")
	assert.Equal(t, err, Err(&buf, err))
	assert.Contains(t, buf.String(), "error_test.go:")
	assert.Contains(t, buf.String(), "boom")
}

func TestPanic(t *testing.T) {
	assert.NotPanics(t, func() { Panic(nil) })
	assert.Panics(t, func() { Panic(ErrCorruptFile) })
}
