package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/legiscope/pkg/domain"
)

// DocumentRepository stores raw source documents, one row per url
type DocumentRepository struct {
	db *sqlx.DB
}

// documentSQL represents a document for SQL operations
type documentSQL struct {
	URL       string    `db:"url"`
	Kind      string    `db:"kind"`
	Body      string    `db:"body"`
	FetchedAt time.Time `db:"fetched_at"`
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Get returns the stored document for url, found is false if there is none
func (r *DocumentRepository) Get(ctx context.Context, url string) (doc domain.Document, found bool, err error) {
	var row documentSQL
	err = r.db.GetContext(ctx, &row, "SELECT url, kind, body, fetched_at FROM documents WHERE url = ?", url)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Document{}, false, nil
	}
	if err != nil {
		return domain.Document{}, false, fmt.Errorf("get document: %w", err)
	}
	return domain.Document{
		URL:       row.URL,
		Kind:      domain.DocumentKind(row.Kind),
		Body:      row.Body,
		FetchedAt: row.FetchedAt.UTC(),
	}, true, nil
}

// Put inserts or replaces the document, lock errors are retried
func (r *DocumentRepository) Put(ctx context.Context, doc domain.Document) error {
	row := documentSQL{URL: doc.URL, Kind: string(doc.Kind), Body: doc.Body, FetchedAt: doc.FetchedAt.UTC()}
	query := `
		INSERT INTO documents (url, kind, body, fetched_at)
		VALUES (:url, :kind, :body, :fetched_at)
		ON CONFLICT(url) DO UPDATE SET
			kind = excluded.kind,
			body = excluded.body,
			fetched_at = excluded.fetched_at
	`
	err := writeRetrier().Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		return nil
	}, errCritical)
	if err != nil {
		return fmt.Errorf("put document %s: %w", doc.URL, err)
	}
	return nil
}

// Purge deletes documents fetched before olderThan and returns the number of deleted rows
func (r *DocumentRepository) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	var deleted int64
	err := writeRetrier().Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE fetched_at < ?", olderThan.UTC())
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		if deleted, err = res.RowsAffected(); err != nil {
			return &criticalError{err: err}
		}
		return nil
	}, errCritical)
	if err != nil {
		return 0, fmt.Errorf("purge documents: %w", err)
	}
	return deleted, nil
}

// Stats returns the number of stored documents per kind
func (r *DocumentRepository) Stats(ctx context.Context) (map[domain.DocumentKind]int, error) {
	var rows []struct {
		Kind  string `db:"kind"`
		Count int    `db:"cnt"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT kind, COUNT(*) AS cnt FROM documents GROUP BY kind"); err != nil {
		return nil, fmt.Errorf("get document stats: %w", err)
	}
	res := make(map[domain.DocumentKind]int, len(rows))
	for _, row := range rows {
		res[domain.DocumentKind(row.Kind)] = row.Count
	}
	return res, nil
}
