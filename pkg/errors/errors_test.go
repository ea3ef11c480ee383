package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrNoVariant, "no matching variant")
	assert.Equal(t, ErrNoVariant, err.Code)
	assert.Equal(t, "no matching variant", err.Message)
	assert.Equal(t, "[NO_VARIANT] no matching variant", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrWidgetNotFound, "widget %q not found", "eww")
	assert.Equal(t, `[WIDGET_NOT_FOUND] widget "eww" not found`, err.Error())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		inner   error
		code    ErrorCode
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wraps underlying error",
			inner:   fmt.Errorf("permission denied"),
			code:    ErrFileCopy,
			wantMsg: "[FILE_COPY] copy failed: permission denied",
		},
		{
			name:    "nil error returns nil",
			inner:   nil,
			code:    ErrFileCopy,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.inner, tt.code, "copy failed")
			if tt.wantNil {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, tt.inner, errors.Unwrap(err))
		})
	}
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrBackup, "cannot write backup")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, IsErrorCode(err, ErrBackup))
	assert.True(t, IsErrorCode(wrapped, ErrBackup))
	assert.False(t, IsErrorCode(err, ErrFileCopy))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrBackup))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrNoVariant, GetErrorCode(New(ErrNoVariant, "skip")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrMappingInvalid, "mapping references unknown widget").
		WithDetail("widget", "clock").
		WithDetail("folder", "eww, fabirc, or weld")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "clock", details["widget"])
	assert.Equal(t, "eww, fabirc, or weld", details["folder"])
}

func TestErrorsIs(t *testing.T) {
	a := New(ErrNoVariant, "one")
	b := New(ErrNoVariant, "another")
	c := New(ErrBackup, "different code")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}
