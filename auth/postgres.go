// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package auth

import (
	"database/sql"
	"fmt"

	"github.com/interviewlens/interviewAPI/config"
	_ "github.com/lib/pq"
)

// PostgresTokenStore validates tokens against a configurable lookup query.
type PostgresTokenStore struct {
	db    *sql.DB
	query string
}

func NewPostgresTokenStore(cfg *config.Config) (*PostgresTokenStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Auth.Postgres.Host,
		cfg.Auth.Postgres.Port,
		cfg.Auth.Postgres.User,
		cfg.Auth.Postgres.Password,
		cfg.Auth.Postgres.DBName,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("postgres connection failed: %v", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres ping failed: %v", err)
	}

	return &PostgresTokenStore{db: db, query: cfg.Auth.Postgres.Query}, nil
}

func (s *PostgresTokenStore) ValidateToken(token string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(s.query, token).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CacheToken is a no-op; Postgres is the source of truth, not a cache.
func (s *PostgresTokenStore) CacheToken(token string) error {
	return nil
}

func (s *PostgresTokenStore) Close() error {
	return s.db.Close()
}
