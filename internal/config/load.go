package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrEmptyPath = errors.New("config: empty preset path")

// Parse decodes a JSON preset. Unknown keys are rejected.
func Parse(data []byte) (Options, error) {
	var o Options
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&o); err != nil {
		return Options{}, fmt.Errorf("config: decode preset: %w", err)
	}
	return o, nil
}

// LoadFile reads a JSON preset from path.
func LoadFile(path string) (Options, error) {
	if strings.TrimSpace(path) == "" {
		return Options{}, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: read preset: %w", err)
	}
	o, err := Parse(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}
