package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Load decodes the json file at the given path into v.
// Unknown fields are rejected.
func Load(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not load config '%s': %w", path, err)
	}
	defer f.Close()

	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal the config '%s': %w", path, err)
	}

	log.Info().Str("config", path).Msg("loaded config")
	return nil
}
