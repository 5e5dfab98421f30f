package session

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// IDGenerator produces the random part of anonymous visitor ids.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string {
	return f()
}

// randomIDGenerator encodes a random (version 4) UUID as 32 hex characters.
type randomIDGenerator struct{}

func (randomIDGenerator) NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
