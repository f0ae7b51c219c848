package db

import (
	"context"
	_ "embed"
	"fmt"

	"blogapi/internal/config"
	"blogapi/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

//go:embed schema.sql
var schemaSQL string

// Store — подключение к выбранному хранилищу и репозитории поверх него.
type Store struct {
	Authors repository.AuthorRepo
	Posts   repository.BlogPostRepo

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }
func (s *Store) Close(ctx context.Context) error { return s.close(ctx) }

// Open подключается к хранилищу по cfg.DbDriver и готовит схему/индексы.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.DbDriver {
	case config.DriverPostgres:
		pool, err := NewPostgresConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Authors: repository.NewAuthorPgRepo(pool),
			Posts:   repository.NewBlogPostPgRepo(pool),
			ping:    pool.Ping,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil
	case config.DriverMongo:
		client, err := NewMongoConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.MongoDB)
		if err := repository.EnsureMongoIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Store{
			Authors: repository.NewAuthorMongoRepo(database),
			Posts:   repository.NewBlogPostMongoRepo(database),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			close: client.Disconnect,
		}, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DbDriver)
	}
}

func NewPostgresConnection(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// EnsureSchema идемпотентно создаёт таблицы и индексы.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func NewMongoConnection(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.GetDSN()))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}
