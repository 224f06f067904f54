package hcl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vk/trainboot/internal/config"
)

var errRootNotObject = errors.New("root value must be an object")

// decodeObject decodes a JSON object into a Document, keeping top-level key
// order. A repeated key keeps its first position and its last value.
func decodeObject(src []byte) (*config.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errRootNotObject
	}

	doc := config.NewDocument()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v where an object key was expected", keyTok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("invalid value for key %q: %w", key, err)
		}
		doc.SetJSON(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the root object")
	}
	return doc, nil
}
