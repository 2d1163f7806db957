package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrappedForwarding(t *testing.T) {
	var got []any
	w := NewWrapped(func(v any) { got = append(got, v) }, false)

	w.Debug("d")
	w.Warning("w")
	w.Info("i")
	w.Error("e")
	w.Critical("c")

	require.Equal(t, []any{"d", "w", "i", "e", "c"}, got)
}

func TestWrappedException(t *testing.T) {
	t.Run("debug off", func(t *testing.T) {
		var got []any
		w := NewWrapped(func(v any) { got = append(got, v) }, false)

		w.Exception(errors.New("boom"))

		require.Len(t, got, 1)
	})

	t.Run("debug on with error", func(t *testing.T) {
		var got []any
		w := NewWrapped(func(v any) { got = append(got, v) }, true)

		err := errors.New("boom")
		w.Exception(err)

		require.Len(t, got, 2)
		assert.Equal(t, err, got[0])

		trace, ok := got[1].(string)
		require.True(t, ok)
		assert.Contains(t, trace, "boom")
		assert.Contains(t, trace, "goroutine")
	})

	t.Run("debug on without error", func(t *testing.T) {
		var got []any
		w := NewWrapped(func(v any) { got = append(got, v) }, true)

		w.Exception("just text")

		require.Equal(t, []any{"just text"}, got)
	})

	t.Run("debug on with nil", func(t *testing.T) {
		var got []any
		w := NewWrapped(func(v any) { got = append(got, v) }, true)

		w.Exception(nil)

		require.Len(t, got, 1)
	})
}

func TestWrappedSinkPanicPropagates(t *testing.T) {
	w := NewWrapped(func(v any) { panic("sink") }, false)

	require.PanicsWithValue(t, "sink", func() { w.Info("x") })
}
