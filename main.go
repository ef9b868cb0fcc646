package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"gigbook/internal/artists"
	"gigbook/internal/artists/artist_api"
	artistdb "gigbook/internal/artists/db"
	"gigbook/internal/config"
	"gigbook/internal/database/migrations"
	"gigbook/internal/logger"
	"gigbook/internal/shows"
	showdb "gigbook/internal/shows/db"
	"gigbook/internal/shows/show_api"
	"gigbook/internal/venues"
	venuedb "gigbook/internal/venues/db"
	"gigbook/internal/venues/venue_api"
	"gigbook/internal/web"
)

func connectDatabase(cfg *config.Config, log *logger.Logger) *bun.DB {
	dsn := cfg.Database.DSN()

	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", dsn)
		if err != nil {
			log.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	log.Info("DATABASE", "PostgreSQL connection successful")
	return bun.NewDB(sqldb, pgdialect.New())
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Gigbook initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()

	bunDB := connectDatabase(cfg, log)
	defer bunDB.Close()

	runner := migrations.NewRunner(bunDB, migrations.MigrateOptions{
		MigrationsDir: cfg.Migration.Dir,
		AutoMigrate:   true,
		SeedData:      cfg.Migration.SeedData,
	})
	if err := runner.RunMigrations(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Migration failed: %v", err))
	}
	log.Info("DATABASE", "Schema is up to date")

	renderer, err := web.NewRenderer(log)
	if err != nil {
		log.Fatal("RENDER", fmt.Sprintf("Failed to load templates: %v", err))
	}

	venueService := venues.NewVenueService(&venuedb.DB{Bun: bunDB})
	artistService := artists.NewArtistService(&artistdb.DB{Bun: bunDB})
	showService := shows.NewShowService(&showdb.DB{Bun: bunDB})

	venueHandler := &venue_api.Handler{
		VenueService: venueService,
		Renderer:     renderer,
		Logger:       log,
	}
	artistHandler := &artist_api.Handler{
		ArtistService: artistService,
		Renderer:      renderer,
		Logger:        log,
	}
	showHandler := &show_api.Handler{
		ShowService: showService,
		Renderer:    renderer,
		Logger:      log,
	}

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(web.RequestLogger(log))
	r.Use(web.Recoverer(renderer, log))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		renderer.HTML(w, req, http.StatusOK, "home.html", "Home", nil)
	})

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", venueHandler.ListVenues)
		r.Post("/search", venueHandler.SearchVenues)
		r.Get("/create", venueHandler.NewVenueForm)
		r.Post("/create", venueHandler.CreateVenue)
		r.Get("/{venueID}", venueHandler.ShowVenue)
		r.Delete("/{venueID}", venueHandler.DeleteVenue)
		r.Get("/{venueID}/edit", venueHandler.EditVenueForm)
		r.Post("/{venueID}/edit", venueHandler.EditVenue)
	})
	log.Info("ROUTER", "Venue routes registered under /venues")

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", artistHandler.ListArtists)
		r.Post("/search", artistHandler.SearchArtists)
		r.Get("/create", artistHandler.NewArtistForm)
		r.Post("/create", artistHandler.CreateArtist)
		r.Get("/{artistID}", artistHandler.ShowArtist)
		r.Get("/{artistID}/edit", artistHandler.EditArtistForm)
		r.Post("/{artistID}/edit", artistHandler.EditArtist)
	})
	log.Info("ROUTER", "Artist routes registered under /artists")

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", showHandler.ListShows)
		r.Get("/create", showHandler.NewShowForm)
		r.Post("/create", showHandler.CreateShow)
	})
	log.Info("ROUTER", "Show routes registered under /shows")

	r.NotFound(renderer.NotFound)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Gigbook running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Gigbook shutdown complete")
	}
}
