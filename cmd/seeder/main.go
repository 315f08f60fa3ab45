// Command seeder loads the built-in example dataset through the regular
// services, so seeded records get the same validation, bilingual defaults and
// ids as records created over HTTP.
package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travelhub/internal/adapters/observability"
	"travelhub/internal/app"
	"travelhub/internal/shared"
	mysqlrepo "travelhub/internal/storage/mysql"
	"travelhub/migrations"
)

func main() {
	ctx := context.Background()
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}
	log.Logger = observability.NewLogger(cfg.AppEnv)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("mysql"); err != nil {
		log.Fatal().Err(err).Msg("goose dialect")
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	destRepo := mysqlrepo.NewDestinationRepo(db)
	hotelRepo := mysqlrepo.NewHotelRepo(db)
	destinations := app.NewDestinationService(destRepo, hotelRepo, nil, 0)
	hotels := app.NewHotelService(hotelRepo, destRepo, nil, 0)

	// destinations first, sequentially: hotels need their generated ids
	idsByName := make(map[string]string, len(seedDestinations))
	for _, p := range seedDestinations {
		d, err := destinations.Create(ctx, p)
		if err != nil {
			log.Fatal().Str("name", *p.Name).Err(err).Msg("seed destination failed")
		}
		idsByName[d.Name] = d.ID
		log.Info().Str("name", d.Name).Str("id", d.ID).Msg("destination seeded")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, s := range seedHotels {
		s := s
		id, ok := idsByName[s.destination]
		if !ok {
			log.Fatal().Str("destination", s.destination).Msg("unknown seed destination")
		}
		s.patch.DestinationID = &id

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			h, err := hotels.Create(ctx, s.patch)
			if err != nil {
				log.Warn().Str("name", *s.patch.Name).Err(err).Msg("seed hotel failed")
				return
			}
			log.Info().Str("name", h.Name).Str("id", h.ID).Msg("hotel seeded")
		}()
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
