package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	server "travelhub/internal/adapters/http_server"
	"travelhub/internal/adapters/observability"
	redisad "travelhub/internal/adapters/redis"
	"travelhub/internal/app"
	"travelhub/internal/shared"
	mysqlrepo "travelhub/internal/storage/mysql"
	"travelhub/migrations"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("mysql"); err != nil {
		log.Fatal().Err(err).Msg("goose dialect")
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	// deps
	destRepo := mysqlrepo.NewDestinationRepo(db)
	hotelRepo := mysqlrepo.NewHotelRepo(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	destinations := app.NewDestinationService(destRepo, hotelRepo, cache, cfg.CacheTTL)
	hotels := app.NewHotelService(hotelRepo, destRepo, cache, cfg.CacheTTL)

	// http
	srv := server.New(server.Options{CORSOrigins: cfg.CORSOrigins, RateRPS: cfg.RateRPS})
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Destinations: destinations, Hotels: hotels, Env: cfg.AppEnv})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-stop
	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("server stopped")
}
