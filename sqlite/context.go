package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docbot"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docbot.ContextCache = (*ContextService)(nil)

// ContextService implements docbot.ContextCache using SQLite. It stores
// the aggregated crawl output per seed URL so repeated questions against
// the same documentation page do not re-crawl the site.
type ContextService struct {
	db *DB
}

// NewContextService creates a new ContextService.
func NewContextService(db *DB) *ContextService {
	return &ContextService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// GetContext returns the cached context for url if it was stored less than
// maxAge ago. Returns ENOTFOUND when the entry is missing or stale.
func (s *ContextService) GetContext(ctx context.Context, url string, maxAge time.Duration) (string, error) {
	var content, fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT content, fetched_at FROM contexts WHERE url = ?
	`, url).Scan(&content, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return "", docbot.Errorf(docbot.ENOTFOUND, "no cached context for %q", url)
	}
	if err != nil {
		return "", err
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return "", fmt.Errorf("failed to parse fetched_at: %w", err)
	}
	if time.Now().UTC().Sub(t) >= maxAge {
		return "", docbot.Errorf(docbot.ENOTFOUND, "cached context for %q is stale", url)
	}

	return content, nil
}

// PutContext stores or replaces the context for url.
func (s *ContextService) PutContext(ctx context.Context, url string, content string) error {
	if url == "" {
		return docbot.Errorf(docbot.EINVALID, "context URL required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contexts (id, url, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, uuid.New().String(), url, content, hashContent(content),
		time.Now().UTC().Format(time.RFC3339))

	return err
}
