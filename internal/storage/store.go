package storage

import (
	"errors"
	"fmt"
)

const (
	ResultsDir = "results"
	MapsDir    = "maps"
	JournalDir = "journal"
)

var (
	// DefaultDir is the root for all file based storage.
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for an experiment artefact.
type Key struct {
	Run        string `json:"run"`
	Experiment string `json:"experiment"`
	Label      string `json:"label"`
}

// Path returns the file name for the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s_%s", k.Run, k.Experiment, k.Label)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
