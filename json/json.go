// Package json loads document descriptions written in JSON and turns them
// into mdwriter documents.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/mdwriter"
)

// ErrInvalidDocument indicates a document description that cannot be
// turned into a document.
var ErrInvalidDocument = errors.New("invalid document")

// envelope is the v1 wire format for a document description.
type envelope struct {
	Version int        `json:"version"`
	Blocks  []blockDTO `json:"blocks"`
}

// UnmarshalDocument decodes a v1 document description.
func UnmarshalDocument(data []byte) (mdwriter.Document, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d: %w", env.Version, ErrInvalidDocument)
	}
	doc := make(mdwriter.Document, 0, len(env.Blocks))
	for i, b := range env.Blocks {
		e, err := unmarshalBlock(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		doc = append(doc, e)
	}
	return doc, nil
}

// Load reads a document description from a JSON file.
func Load(path string) (mdwriter.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalDocument(data)
}
