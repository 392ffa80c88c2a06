// Package seed loads YAML fixtures for the in-memory stores.
package seed

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML list of records from path. An empty path yields no records.
func Load[T any](path string) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	records, err := Decode[T](bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return records, nil
}

// Decode reads a YAML list of records. Unknown fields are rejected.
func Decode[T any](r io.Reader) ([]T, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var records []T
	if err := dec.Decode(&records); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	return records, nil
}
