// Package jsonfile reads JSON documents from disk into typed values.
//
//	type Config struct {
//		Port int `json:"port"`
//	}
//
//	cfg, err := jsonfile.Read[Config]("./config.json")
//	if errors.Is(err, jsonfile.ErrParse) {
//		// The file exists but is not valid JSON.
//	}
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrRead indicates the file could not be read.
	ErrRead = errors.New("failed to read file")

	// ErrParse indicates the content is not valid JSON for the target type.
	ErrParse = errors.New("failed to parse JSON")
)

// Read reads the file at path and decodes its JSON content into T.
func Read[T any](path string) (T, error) {
	var out T

	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Parse[T](data)
}

// Decode reads all of r and decodes its JSON content into T.
func Decode[T any](r io.Reader) (T, error) {
	var out T

	data, err := io.ReadAll(r)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Parse[T](data)
}

// Parse decodes JSON data into T.
func Parse[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return out, nil
}
