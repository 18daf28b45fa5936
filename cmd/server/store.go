package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/actuallystonmai/stylesense-service/internal/cache"
	"github.com/actuallystonmai/stylesense-service/internal/config"
	"github.com/actuallystonmai/stylesense-service/internal/repository"
	"github.com/actuallystonmai/stylesense-service/internal/store"
)

// openStore connects the configured backend. With migrateDownOnly it drops
// the Postgres tables and returns without a usable store.
func openStore(ctx context.Context, cfg *config.Config, migrateDownOnly bool) (store.KV, func(), error) {
	if migrateDownOnly && cfg.StoreBackend != config.StorePostgres {
		return nil, nil, errors.New("migrate-down requires STORE_BACKEND=postgres")
	}

	switch cfg.StoreBackend {
	case config.StoreRedis:
		return openRedis(ctx, cfg)
	case config.StorePostgres:
		return openPostgres(ctx, cfg, migrateDownOnly)
	default:
		logrus.Info("using in-memory store")
		return store.NewMemory(), func() {}, nil
	}
}

// ------------ Redis ---------------
func openRedis(ctx context.Context, cfg *config.Config) (store.KV, func(), error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	kv := cache.NewStore(client)
	if err := kv.Ping(ctx); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	logrus.Info("connected to Redis")
	return kv, func() { client.Close() }, nil
}

// ------------ PostgreSQL ---------------
func openPostgres(ctx context.Context, cfg *config.Config, migrateDownOnly bool) (store.KV, func(), error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := waitForDB(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("database not ready: %w", err)
	}
	logrus.Info("connected to PostgreSQL")

	if migrateDownOnly {
		err := migrateDown(ctx, pool)
		pool.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("migrate down: %w", err)
		}
		return nil, func() {}, nil
	}

	if err := migrateUp(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrate up: %w", err)
	}
	return repository.NewRepository(pool), pool.Close, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		logrus.Infof("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	return execFile(ctx, pool, "migrations/create_tables.down.sql", "migrations dropped successfully")
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	return execFile(ctx, pool, "migrations/create_tables.up.sql", "migrations applied successfully")
}

func execFile(ctx context.Context, pool *pgxpool.Pool, path, done string) error {
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	logrus.Info(done)
	return nil
}
