// Package audit persists aggregate anonymization counters in
// PostgreSQL. Only counts and lengths are stored, never the scanned
// text or any detected value.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/entity"
)

// Store handles aggregate counter storage in PostgreSQL
type Store struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// Config contains database configuration
type Config struct {
	DatabaseURL     string        `yaml:"database_url" mapstructure:"database_url"`
	MaxOpenConns    int           `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
}

// Summary is the aggregate view over everything recorded so far.
type Summary struct {
	Requests       int64            `json:"requests"`
	TotalBytes     int64            `json:"total_bytes"`
	SanitizedBytes int64            `json:"sanitized_bytes"`
	ByCategory     map[string]int64 `json:"by_category"`
}

// NewStore creates a new audit store instance
func NewStore(config *Config, logger *zap.Logger) (*Store, error) {
	db, err := sqlx.Connect("postgres", config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		db.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	if err := store.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	logger.Info("Audit store initialized successfully",
		zap.String("database_url", maskDatabaseURL(config.DatabaseURL)))

	return store, nil
}

// initialize checks the connection and ensures the counter tables exist
func (s *Store) initialize() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS detection_counters (
			category   TEXT PRIMARY KEY,
			detections BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS request_totals (
			id              INT PRIMARY KEY CHECK (id = 1),
			requests        BIGINT NOT NULL DEFAULT 0,
			total_bytes     BIGINT NOT NULL DEFAULT 0,
			sanitized_bytes BIGINT NOT NULL DEFAULT 0,
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		INSERT INTO request_totals (id) VALUES (1) ON CONFLICT (id) DO NOTHING;`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create audit tables: %w", err)
	}

	return nil
}

// Record bumps the aggregate counters for one anonymization pass.
func (s *Store) Record(ctx context.Context, byCategory map[entity.Type]int, originalLen, sanitizedLen int) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin audit transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE request_totals
		SET requests = requests + 1,
		    total_bytes = total_bytes + $1,
		    sanitized_bytes = sanitized_bytes + $2,
		    updated_at = now()
		WHERE id = 1`,
		originalLen, sanitizedLen)
	if err != nil {
		return fmt.Errorf("failed to update request totals: %w", err)
	}

	for category, count := range byCategory {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO detection_counters (category, detections, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (category) DO UPDATE
			SET detections = detection_counters.detections + EXCLUDED.detections,
			    updated_at = now()`,
			string(category), count)
		if err != nil {
			return fmt.Errorf("failed to update counter for %s: %w", category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit audit transaction: %w", err)
	}

	s.logger.Debug("Audit counters updated",
		zap.Int("categories", len(byCategory)),
		zap.Int("original_len", originalLen))

	return nil
}

// GetSummary returns the aggregate counters
func (s *Store) GetSummary(ctx context.Context) (*Summary, error) {
	summary := &Summary{ByCategory: make(map[string]int64)}

	err := s.db.QueryRowContext(ctx, `
		SELECT requests, total_bytes, sanitized_bytes FROM request_totals WHERE id = 1`).
		Scan(&summary.Requests, &summary.TotalBytes, &summary.SanitizedBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to get request totals: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, detections FROM detection_counters ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to get detection counters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			s.logger.Error("Failed to scan detection counter", zap.Error(err))
			continue
		}
		summary.ByCategory[category] = count
	}

	return summary, rows.Err()
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// maskDatabaseURL masks sensitive information in database URL for logging
func maskDatabaseURL(url string) string {
	if strings.Contains(url, "@") {
		parts := strings.Split(url, "@")
		if len(parts) >= 2 {
			userPart := parts[0]
			if strings.Contains(userPart, ":") {
				userParts := strings.Split(userPart, ":")
				if len(userParts) >= 3 {
					userParts[len(userParts)-1] = "***"
					parts[0] = strings.Join(userParts, ":")
				}
			}
			return strings.Join(parts, "@")
		}
	}
	return url
}
