// Package storage opens the database connection, wires the repositories,
// and applies pending migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amankou/farmauth/internal/server/accounts"
	"github.com/amankou/farmauth/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Postgres bundles the open connection with the repositories built on it.
type Postgres struct {
	db       *sql.DB
	accounts accounts.Repository
}

func (p *Postgres) Conn() *sql.DB {
	return p.db
}

func (p *Postgres) Accounts() accounts.Repository {
	return p.accounts
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

// RunMigrations applies the embedded goose migrations.
func (p *Postgres) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, p.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgres opens the pool for the given DSN, builds the account
// repository, and applies migrations.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	accountRepo, err := accounts.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("account repo creation error: %w", err)
	}

	p := &Postgres{
		db:       db,
		accounts: accountRepo,
	}

	if err := p.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return p, nil
}
