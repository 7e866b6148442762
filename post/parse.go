package post

import (
	"bytes"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Parse decodes a post specification, rejecting unknown fields.
func Parse(data []byte) (*Post, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Post
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode post specification: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses a post specification file.
func Load(path string) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read post specification: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Read parses a post specification from a reader.
func Read(r io.Reader) (*Post, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read post specification: %w", err)
	}
	return Parse(data)
}
