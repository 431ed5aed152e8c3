package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	revisionAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	revisionSize     = 12
)

// NewRevision gera o identificador curto de cada gravação do snapshot
func NewRevision() (string, error) {
	return gonanoid.Generate(revisionAlphabet, revisionSize)
}
