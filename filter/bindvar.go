package filter

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// BindVariableGenerator produces placeholder names. Implementations must be
// safe for concurrent use and must only return names made of letters,
// digits and underscores.
type BindVariableGenerator interface {
	BindVariable() string
}

// BindVariableFunc adapts a function to a BindVariableGenerator.
type BindVariableFunc func() string

func (f BindVariableFunc) BindVariable() string {
	return f()
}

// Generated names start with a letter; named-parameter parsers such as
// sqlx and ActiveRecord don't recognize placeholders starting with a digit.
const generatedPrefix = "v"

// RandomHex returns the default generator: 128 random bits, hex encoded,
// behind a one letter prefix.
func RandomHex() BindVariableGenerator {
	return BindVariableFunc(func() string {
		var b [16]byte
		if _, err := rand.Read(b[:]); err != nil {
			panic("filter: reading random bytes: " + err.Error())
		}
		return generatedPrefix + hex.EncodeToString(b[:])
	})
}

// UUIDs returns a generator of random (version 4) UUIDs without dashes.
func UUIDs() BindVariableGenerator {
	return BindVariableFunc(func() string {
		u := uuid.New()
		return generatedPrefix + hex.EncodeToString(u[:])
	})
}

// Sequence hands out prefix1, prefix2, ... and is meant for tests and
// reproducible SQL.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

// NewSequence creates a Sequence. An empty prefix defaults to "p".
func NewSequence(prefix string) *Sequence {
	if prefix == "" {
		prefix = "p"
	}
	return &Sequence{prefix: prefix}
}

func (s *Sequence) BindVariable() string {
	return s.prefix + strconv.FormatUint(s.n.Add(1), 10)
}

var defaultGenerator = RandomHex()
