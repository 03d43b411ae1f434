package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"device-state-pipeline/internal/api"
	"device-state-pipeline/internal/config"
	"device-state-pipeline/internal/db"
	"device-state-pipeline/internal/directory"
	"device-state-pipeline/internal/merge"
	"device-state-pipeline/internal/presence"
	"device-state-pipeline/internal/processors/aggregator"
	"device-state-pipeline/internal/processors/persister"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.Database.ConnString,
		MigrationsPath: cfg.Database.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	engine := merge.New(merge.Config{
		States:       store,
		Directory:    directory.New(store.Pool()),
		CallTimeout:  cfg.StoreCallTimeout,
		MetricsGroup: cfg.Kafka.AggregatorGroupID,
	})

	wPersister := persister.New(persister.Config{
		Brokers:         cfg.Kafka.Brokers,
		ConsumerGroupID: cfg.Kafka.PersisterGroupID,
		ConsumerTopic:   cfg.Kafka.RawTopic,
		PublisherTopic:  cfg.Kafka.EventsTopic,
		Workers:         cfg.Persister.Workers,
		Events:          store,
	})
	wAggregator := aggregator.New(aggregator.Config{
		Brokers:         cfg.Kafka.Brokers,
		ConsumerGroupID: cfg.Kafka.AggregatorGroupID,
		ConsumerTopic:   cfg.Kafka.EventsTopic,
		WindowLength:    cfg.Window.Length,
		EmitOnUpdate:    cfg.Window.EmitOnUpdate,
		FlushInterval:   cfg.Window.FlushInterval,
		Persister:       engine,
		MetricsGroup:    cfg.Kafka.AggregatorGroupID,
	})
	presenceManager := presence.New(presence.Config{
		States:          store,
		CheckInterval:   cfg.Presence.CheckInterval,
		MissingInterval: cfg.Presence.MissingInterval,
		BatchSize:       cfg.Presence.BatchSize,
	})

	wg := sync.WaitGroup{}
	wg.Go(func() {
		wPersister.Run(ctx)
	})
	wg.Go(func() {
		wAggregator.Run(ctx)
	})
	wg.Go(func() {
		presenceManager.Run(ctx)
	})

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.New(api.Config{States: store}).Router(),
	}
	go func() {
		slog.InfoContext(ctx, "HTTP server listening...", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	}()

	go func() {
		<-sigs
		cancel()
	}()

	wg.Wait()

	wPersister.Close(ctx)
	wAggregator.Close(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}
