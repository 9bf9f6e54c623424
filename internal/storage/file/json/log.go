package json

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const filename = "%s.events.log"

// Journal appends one json line per event to a log file per run.
type Journal struct {
	path string
}

// NewJournal creates a journal under the given folder.
func NewJournal(folder string) *Journal {
	return &Journal{path: folder}
}

func (j *Journal) file(run string) string {
	return filepath.Join(j.path, fmt.Sprintf(filename, run))
}

// Add appends the value to the log of the run.
func (j *Journal) Add(run string, value interface{}) error {
	if err := os.MkdirAll(j.path, os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir: %s: %w", j.path, err)
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode value '%+v': %w", value, err)
	}
	f, err := os.OpenFile(j.file(run), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer f.Close()

	if _, err = f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("could not write log file for '%s': %w", run, err)
	}
	return nil
}

// Events decodes every event of the run in the order they were added.
func Events[T any](j *Journal, run string) ([]T, error) {
	f, err := os.Open(j.file(run))
	if err != nil {
		return nil, fmt.Errorf("could not open log file for '%s': %w", run, err)
	}
	defer f.Close()

	events := make([]T, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev T
		if err := json.Unmarshal(line, &ev); err != nil {
			return nil, fmt.Errorf("could not decode event value '%s': %w", line, err)
		}
		events = append(events, ev)
	}
	return events, scanner.Err()
}
