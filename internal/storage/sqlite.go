package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/romangod6/content-platform/internal/models"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS articles (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            content TEXT NOT NULL,
            tags TEXT,
            created_on_utc DATETIME NOT NULL
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

func (s *SQLiteStore) CreateArticle(ctx context.Context, article *models.Article) error {
	query := `
        INSERT INTO articles (id, title, content, tags, created_on_utc)
        VALUES (?, ?, ?, ?, ?)
    `

	tagsJSON, err := json.Marshal(article.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query,
		article.ID.String(),
		article.Title,
		article.Content,
		string(tagsJSON),
		article.CreatedOnUtc,
	)

	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
