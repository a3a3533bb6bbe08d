package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"podmerge/internal/config"
	"podmerge/internal/publisher"
	"podmerge/internal/service"
	"podmerge/internal/storage/postgres"
)

// appContext connects to the database and the broker on first use.
type appContext struct {
	configFlag *string

	once   sync.Once
	err    error
	cfg    *config.Config
	logger *slog.Logger
	db     *sqlx.DB
	rabbit *publisher.RabbitMQ

	mergedUUIDs *postgres.MergedUUIDStore
	merges      *service.MergeService
	queue       *service.QueueProcessor
}

func newAppContext(configFlag *string) *appContext {
	return &appContext{configFlag: configFlag}
}

func (a *appContext) ensure() error {
	a.once.Do(func() {
		a.err = a.init()
	})
	return a.err
}

func (a *appContext) init() error {
	cfg, err := config.Load(*a.configFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	a.db = db
	a.logger.Debug("connected to database")

	// The publisher interface stays nil unless events are enabled.
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbit, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, a.logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		a.rabbit = rabbit
		pub = rabbit
	}

	stores := service.Stores{
		Podcasts:      postgres.NewPodcastStore(db),
		Episodes:      postgres.NewEpisodeStore(db),
		URLs:          postgres.NewURLStore(db),
		Slugs:         postgres.NewSlugStore(db),
		MergedUUIDs:   postgres.NewMergedUUIDStore(db),
		States:        postgres.NewEpisodeStateStore(db),
		Subscriptions: postgres.NewSubscriptionStore(db),
		History:       postgres.NewHistoryStore(db),
		Publishers:    postgres.NewPublisherStore(db),
	}
	txManager := postgres.NewTransactionManager(db)

	a.mergedUUIDs = postgres.NewMergedUUIDStore(db)
	a.merges = service.NewMergeService(stores, txManager, pub, a.logger)
	a.queue = service.NewQueueProcessor(postgres.NewRequestStore(db), a.merges, cfg.Queue.BatchSize, a.logger)
	return nil
}

func (a *appContext) close() {
	if a.rabbit != nil {
		_ = a.rabbit.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
