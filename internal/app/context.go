// Package app resolves a workspace into a ready-to-use environment: open
// database, applied migrations, loaded config and a wired service.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gridworks/internal/auth"
	"gridworks/internal/config"
	"gridworks/internal/db"
	"gridworks/internal/domain"
	"gridworks/internal/migrate"
	"gridworks/internal/repo"
	"gridworks/internal/usecase"
)

// Env is the assembled runtime environment for one workspace.
type Env struct {
	DB      *sql.DB
	Config  *config.Config
	Repo    repo.Repo
	Service usecase.Service
	Tokens  auth.TokenIssuer
}

// Open prepares the workspace: the database is created and migrated on
// first use, and a missing gridworks.yml falls back to defaults.
func Open(workspace string) (*Env, error) {
	cfg, err := config.LoadOptional(workspace)
	if err != nil {
		return nil, err
	}
	conn, err := db.Open(db.Config{Workspace: workspace})
	if err != nil {
		return nil, err
	}
	if err := migrate.Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate %s: %w", db.Path(workspace), err)
	}
	r := repo.New(conn)
	svc := usecase.New(r, auth.BcryptHasher{})
	svc.Paging = cfg.PageBounds()
	return &Env{
		DB:      conn,
		Config:  cfg,
		Repo:    r,
		Service: svc,
		Tokens:  auth.TokenIssuer{Secret: cfg.Auth.JWTSecret, TTL: cfg.TokenTTL()},
	}, nil
}

// Close releases the environment's database handle.
func (e *Env) Close() error {
	if e == nil || e.DB == nil {
		return nil
	}
	return e.DB.Close()
}

// EnsureAdmin creates the first user when none exists yet, so a fresh
// workspace can log in. Existing users leave the database untouched.
func (e *Env) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := e.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	_, err := e.Service.CreateUser(ctx, usecase.CreateUserInput{Email: email, Password: password})
	if err != nil && !errors.Is(err, domain.ErrConflict) {
		return err
	}
	return nil
}
