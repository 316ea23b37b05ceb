package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/dealersync/dealersync/cmd/syncer/config"
	"github.com/dealersync/dealersync/internal/dealer"
	"github.com/dealersync/dealersync/internal/fetcher"
	"github.com/dealersync/dealersync/internal/handler"
	"github.com/dealersync/dealersync/internal/images"
	"github.com/dealersync/dealersync/internal/platform/metrics"
	"github.com/dealersync/dealersync/internal/platform/objectstore"
	"github.com/dealersync/dealersync/internal/platform/rabbitmq"
	"github.com/dealersync/dealersync/internal/platform/storage"
	"github.com/dealersync/dealersync/internal/syncer"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when fetching listing images.
	UserAgent = "dealersync/0.0.1"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	_ = godotenv.Load()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	minioClient, err := minio.New(cfg.Bucket.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Bucket.AccessKey, cfg.Bucket.SecretKey, ""),
		Secure: cfg.Bucket.UseSSL,
	})
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open object storage connection")
	}

	bucket := objectstore.NewBucket(minioClient, cfg.Bucket.Name, cfg.Bucket.PublicBaseURL)
	if err := bucket.Ping(ctx); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't reach image bucket")
	}

	source, stopBrowser := dealer.NewSource(dealer.DefaultProfile(), cfg.PageTimeout, &logger)
	defer stopBrowser()

	pipeline := images.NewPipeline(
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent),
		bucket,
		images.Config{
			Width:     cfg.Images.Width,
			Height:    cfg.Images.Height,
			Quality:   cfg.Images.Quality,
			MaxImages: cfg.Images.MaxImages,
			Workers:   cfg.Images.Workers,
			Timeout:   cfg.Images.Timeout,
		},
		&logger,
	)

	sy := syncer.NewSyncer(
		source,
		storage.NewPostgres(pgDB),
		pipeline,
		&logger,
		syncer.Config{
			PerDealerCap: cfg.PerDealerCap,
			GlobalCap:    cfg.GlobalCap,
			Workers:      cfg.CandidateWorkers,
			Pace:         cfg.PaceDelay,
		},
		syncer.WithMonitor(metrics.New()),
	)

	if cfg.MetricsAddr != "" {
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, metrics.Handler()); err != nil {
				logger.Error().
					Err(err).
					Msg("metrics listener stopped")
			}
		}()
	}

	han := handler.NewHandler(conn, sy, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("dealer syncer up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
