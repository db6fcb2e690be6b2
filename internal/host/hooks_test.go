package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHooksEmitInOrder(t *testing.T) {
	t.Parallel()

	h := NewHooks()

	var calls []string

	h.On(EventContentSaved, func(context.Context) { calls = append(calls, "first") })
	h.On(EventContentSaved, func(context.Context) { calls = append(calls, "second") })
	h.On(EventThemeSwitched, func(context.Context) { calls = append(calls, "theme") })
	h.On(EventContentSaved, nil)

	h.Emit(context.Background(), EventContentSaved)
	assert.Equal(t, []string{"first", "second"}, calls)

	h.Emit(context.Background(), EventContentDeleted)
	assert.Len(t, calls, 2)

	h.Emit(context.Background(), EventThemeSwitched)
	assert.Equal(t, []string{"first", "second", "theme"}, calls)
}

func TestHooksSubscribeWhileEmitting(t *testing.T) {
	t.Parallel()

	h := NewHooks()
	called := 0

	h.On(EventContentSaved, func(context.Context) {
		called++
		h.On(EventContentSaved, func(context.Context) { called += 10 })
	})

	h.Emit(context.Background(), EventContentSaved)
	assert.Equal(t, 1, called)
}
