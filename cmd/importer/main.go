package main

import (
	"context"
	"flag"
	"os"

	"jp-address-api/internal/config"
	"jp-address-api/internal/gazetteer"
	"jp-address-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	encoding := flag.String("encoding", gazetteer.EncodingUTF8, "CSV encoding: utf8 or sjis")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Str("encoding", *encoding).Msg("starting import")

	records, err := gazetteer.LoadLocations(*file, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse csv")
	}
	log.Info().Int("records", len(records)).Msg("parsed csv")

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool, cfg.GazetteerTable)

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create table")
	}

	copied, err := repo.ImportLocations(ctx, records)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	// Verify data
	count, err := repo.CountLocations(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot verify import")
	}
	if count < len(records) {
		log.Fatal().Int("expected", len(records)).Int("got", count).Msg("record count mismatch")
	}

	log.Info().Int64("imported", copied).Int("total", count).Msg("import finished")
}
