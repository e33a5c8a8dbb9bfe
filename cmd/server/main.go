// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	directoryhandler "ticketd/internal/directory/handler"
	directoryservice "ticketd/internal/directory/service"
	directorystore "ticketd/internal/directory/store"
	"ticketd/internal/platform/config"
	"ticketd/internal/platform/httpserver"
	"ticketd/internal/platform/logger"
	"ticketd/internal/platform/middleware"
	platformredis "ticketd/internal/platform/redis"
	"ticketd/internal/stream"
	streammetrics "ticketd/internal/stream/metrics"
	tickethandler "ticketd/internal/ticket/handler"
	ticketmetrics "ticketd/internal/ticket/metrics"
	ticketservice "ticketd/internal/ticket/service"
	ticketstore "ticketd/internal/ticket/store"
	"ticketd/pkg/async"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var tickets ticketservice.Store
	var directory directoryservice.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		ticketPG := ticketstore.NewPostgres(db)
		directoryPG := directorystore.NewPostgres(db)
		if err := ticketPG.EnsureSchema(ctx); err != nil {
			log.Error("ticket schema", "error", err)
			os.Exit(1)
		}
		if err := directoryPG.EnsureSchema(ctx); err != nil {
			log.Error("directory schema", "error", err)
			os.Exit(1)
		}
		tickets = ticketPG
		directory = directoryPG
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		tickets = ticketstore.NewInMemory()
		directory = directorystore.NewInMemory()
	}

	pool := async.NewPool(cfg.Workers)
	streamMetrics := streammetrics.New()
	registry := stream.NewRegistry(streamMetrics)
	broadcasterOpts := []stream.BroadcasterOption{stream.WithMetrics(streamMetrics)}

	var bridge *stream.RedisBridge
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("redis connect", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		bridge = stream.NewRedisBridge(redisClient.Client, log)
		broadcasterOpts = append(broadcasterOpts, stream.WithBridge(bridge))
	}

	broadcaster := stream.NewBroadcaster(registry, log, broadcasterOpts...)
	if bridge != nil {
		bridge.Bind(broadcaster)
	}

	directorySvc := directoryservice.New(directory, pool, log)
	ticketSvc := ticketservice.New(tickets, directorySvc, broadcaster, pool, log,
		ticketservice.WithMetrics(ticketmetrics.New()))

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS)

	tickethandler.New(ticketSvc, log).Register(router)
	directoryhandler.New(directorySvc, log).Register(router)
	stream.NewHandler(registry, log).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting ticketd", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if bridge != nil {
		g.Go(func() error {
			err := bridge.Run(gctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
