package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/romangod6/content-platform/internal/models"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS articles (
            id UUID PRIMARY KEY,
            title VARCHAR(255) NOT NULL,
            content TEXT NOT NULL,
            tags TEXT[],
            created_on_utc TIMESTAMP NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_articles_created_on_utc ON articles(created_on_utc)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}

	return nil
}

func (s *PostgresStore) CreateArticle(ctx context.Context, article *models.Article) error {
	query := `
        INSERT INTO articles (id, title, content, tags, created_on_utc)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := s.db.ExecContext(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		pq.Array(article.Tags),
		article.CreatedOnUtc,
	)

	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
