package main

import (
	"github.com/drakos74/prospectivity/internal/storage"
	"github.com/drakos74/prospectivity/internal/storage/file/json"
	"github.com/drakos74/prospectivity/internal/storage/sql"
	"github.com/rs/zerolog/log"
)

// persistence stores results in postgres when a dsn is given,
// and as json files under the output directory otherwise.
func persistence(out, dsn string, debug bool) (storage.Shard, func() error, error) {
	if dsn == "" {
		return json.BlobShard(out, storage.ResultsDir, debug), func() error { return nil }, nil
	}
	db, err := sql.Connect(dsn, storage.ResultsDir)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("table", storage.ResultsDir).Msg("storing results in postgres")
	return db.Shard(), db.Close, nil
}
