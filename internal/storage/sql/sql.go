// Package sql stores experiment artefacts as json documents in postgres.
package sql

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drakos74/prospectivity/internal/storage"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS %s (
	run        TEXT  NOT NULL,
	experiment TEXT  NOT NULL,
	label      TEXT  NOT NULL,
	payload    JSONB NOT NULL,
	PRIMARY KEY (run, experiment, label)
)`

const upsert = `INSERT INTO %s (run, experiment, label, payload)
VALUES (:run, :experiment, :label, :payload)
ON CONFLICT (run, experiment, label) DO UPDATE SET payload = EXCLUDED.payload`

const selectPayload = `SELECT payload FROM %s WHERE run = $1 AND experiment = $2 AND label = $3`

type row struct {
	Run        string `db:"run"`
	Experiment string `db:"experiment"`
	Label      string `db:"label"`
	Payload    []byte `db:"payload"`
}

// Storage persists values in a single postgres table.
type Storage struct {
	db    *sqlx.DB
	table string
}

// Connect opens the database and makes sure the table exists.
func Connect(dsn string, table string) (*Storage, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not connect to postgres: %w", err)
	}
	s, err := New(db, table)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database.
func New(db *sqlx.DB, table string) (*Storage, error) {
	if _, err := db.Exec(fmt.Sprintf(schema, table)); err != nil {
		return nil, fmt.Errorf("could not create table '%s': %w", table, err)
	}
	return &Storage{
		db:    db,
		table: table,
	}, nil
}

// Shard serves every shard from the same table, the run is part of the key.
func (s *Storage) Shard() storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return s, nil
	}
}

func (s *Storage) Store(k storage.Key, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode '%+v': %w", k, err)
	}
	_, err = s.db.NamedExec(fmt.Sprintf(upsert, s.table), row{
		Run:        k.Run,
		Experiment: k.Experiment,
		Label:      k.Label,
		Payload:    b,
	})
	if err != nil {
		return fmt.Errorf("could not store '%+v': %w", k, err)
	}
	return nil
}

func (s *Storage) Load(k storage.Key, value interface{}) error {
	var payload []byte
	err := s.db.Get(&payload, fmt.Sprintf(selectPayload, s.table), k.Run, k.Experiment, k.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("not found '%+v': %w", k, storage.NotFoundErr)
	}
	if err != nil {
		return fmt.Errorf("could not load '%+v': %w", k, err)
	}
	if err := json.Unmarshal(payload, value); err != nil {
		return fmt.Errorf("could not decode '%+v': %v: %w", k, err, storage.CouldNotLoadErr)
	}
	return nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	return s.db.Close()
}
