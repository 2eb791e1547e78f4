package infra

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func caller() Frame {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	return Frame(pcs[0])
}

func TestFrameFormat(t *testing.T) {
	frame := caller()

	require.Equal(t, "err_stack_test.go", fmt.Sprintf("%s", frame))
	require.Equal(t, "TestFrameFormat", fmt.Sprintf("%n", frame))
	require.NotEqual(t, "0", fmt.Sprintf("%d", frame))
	require.True(t, strings.HasPrefix(fmt.Sprintf("%v", frame), "err_stack_test.go:"))
	require.Contains(t, fmt.Sprintf("%+v", frame), "err_stack_test.go")

	unknown := Frame(0)
	require.Equal(t, "unknownFile", fmt.Sprintf("%s", unknown))
	require.Equal(t, "unknownFunc", fmt.Sprintf("%n", unknown))
	require.Equal(t, "0", fmt.Sprintf("%d", unknown))
}

func TestFrameMarshalText(t *testing.T) {
	_bytes, err := caller().MarshalText()
	require.NoError(t, err)
	require.Contains(t, string(_bytes), "err_stack_test.go:")

	_bytes, err = Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(_bytes))
}

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("something broke")
	require.Error(t, err)
	require.Equal(t, "something broke", err.Error())

	es, ok := err.(ErrorStack)
	require.True(t, ok)
	require.NotEmpty(t, es.Frames())

	verbose := fmt.Sprintf("%+v", err)
	require.Contains(t, verbose, "something broke")
	require.Contains(t, verbose, "err_stack_test.go")
	require.Equal(t, "something broke", fmt.Sprintf("%v", err))
}

func TestWrapErrorStack(t *testing.T) {
	require.Nil(t, WrapErrorStack(nil))

	sentinel := errors.New("sentinel")
	err := WrapErrorStack(sentinel)
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, "sentinel", err.Error())

	es, ok := err.(ErrorStack)
	require.True(t, ok)
	require.NotEmpty(t, es.Frames())
}

func TestWrapErrorStackWithMessage(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapErrorStackWithMessage(sentinel, "operation failed")
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, "operation failed: sentinel", err.Error())

	// Nil cause behaves like a fresh error.
	err = WrapErrorStackWithMessage(nil, "operation failed")
	require.Error(t, err)
	require.Equal(t, "operation failed", err.Error())
}
