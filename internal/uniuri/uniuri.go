package uniuri

import (
	"crypto/rand"
)

// StdLen is the default key length.
const StdLen = 16

// StdChars is the alphabet keys are drawn from.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789") //nolint:gochecknoglobals

// New returns a random key of StdLen characters.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a random key of length characters from StdChars.
func NewLen(length int) string {
	if length <= 0 {
		return ""
	}

	// largest multiple of the alphabet size below 256 keeps the draw unbiased
	limit := byte(256 - 256%len(StdChars))

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/4+1)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: random source failed: " + err.Error())
		}

		for _, b := range buf {
			if b >= limit {
				continue
			}

			out = append(out, StdChars[int(b)%len(StdChars)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
