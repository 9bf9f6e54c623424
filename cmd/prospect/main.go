package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/drakos74/prospectivity/infra/config"
	"github.com/drakos74/prospectivity/internal/experiment"
	"github.com/drakos74/prospectivity/internal/metrics"
	"github.com/drakos74/prospectivity/internal/storage"
	"github.com/drakos74/prospectivity/internal/storage/file/json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	cfgPath := flag.String("config", "prospect.json", "experiment config file")
	out := flag.String("out", "output", "directory for maps, plots and results")
	addr := flag.String("metrics", "", "address to expose prometheus metrics on, e.g. ':6090'")
	dsn := flag.String("postgres", "", "postgres dsn to store results in, instead of json files")
	report := flag.String("report", "", "print the summary of a previous run from its journal and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	journal := json.NewJournal(filepath.Join(*out, storage.JournalDir))
	if *report != "" {
		results, err := json.Events[experiment.Result](journal, *report)
		if err != nil {
			log.Fatal().Err(err).Str("run", *report).Msg("could not read journal")
		}
		summary(os.Stdout, results)
		return
	}

	cfg := experiment.DefaultConfig()
	if err := config.Load(*cfgPath, &cfg); err != nil {
		log.Fatal().Err(err).Str("config", *cfgPath).Msg("could not load config")
	}

	run := uuid.New().String()
	log.Info().Str("run", run).Str("config", *cfgPath).Strs("experiments", cfg.Names()).Msg("starting run")

	ctx, cnl := context.WithCancel(context.Background())
	defer cnl()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Warn().Msg("interrupted, stopping after the current fold")
		cnl()
	}()

	inputs, err := experiment.Prepare(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not prepare inputs")
	}

	m := metrics.New()
	if *addr != "" {
		srv := m.Serve(*addr)
		defer srv.Close()
	}

	shard, closer, err := persistence(*out, *dsn, *debug)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open storage")
	}
	defer closer()
	store, err := shard(run)
	if err != nil {
		log.Fatal().Err(err).Str("run", run).Msg("could not open storage shard")
	}

	dir := filepath.Join(*out, run)
	layers, err := experiment.Layers(cfg, inputs)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build layers")
	}
	if err := writeLayers(dir, layers); err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("could not write layers")
	}

	results, err := experiment.NewRunner(run, cfg, inputs).
		WithMetrics(m).
		WithStorage(store).
		Run(ctx)
	if err != nil {
		log.Error().Err(err).Int("completed", len(results)).Msg("run failed")
	}

	for _, r := range results {
		if err := journal.Add(run, r); err != nil {
			log.Error().Err(err).Str("fold", r.Name()).Msg("could not add to journal")
		}
	}

	if err := write(dir, results); err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("could not write output")
	}
	summary(os.Stdout, results)

	if err != nil {
		os.Exit(1)
	}
}
