package uniuri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLen(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 8, 16, 100} {
		key := NewLen(n)
		assert.Len(t, key, n)

		for _, c := range []byte(key) {
			assert.Contains(t, string(StdChars), string(c))
		}
	}

	assert.Empty(t, NewLen(0))
	assert.Len(t, New(), StdLen)
	assert.NotEqual(t, New(), New())
}
