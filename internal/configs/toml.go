package configs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// writeTOML encodes config and writes it to path. Nothing is written when
// encoding fails, so an existing file is never left truncated.
func writeTOML(path string, config *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}

// readTOML decodes path into config and returns the keys nothing in Config
// consumed, as dotted paths such as "logger.colour".
func readTOML(path string, config *Config) ([]string, error) {
	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, err
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}
