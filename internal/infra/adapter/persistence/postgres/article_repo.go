// Package postgres implements the repository interfaces on PostgreSQL
// through database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"news-agent/internal/domain/entity"
	"news-agent/internal/repository"
)

const articleColumns = `id, title, description, content, url, image_url, source_name, author, published_at, created_at, summary, summary_generated_at`

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(scanner interface{ Scan(...any) error }) (*entity.Article, error) {
	var article entity.Article
	err := scanner.Scan(&article.ID, &article.Title, &article.Description,
		&article.Content, &article.URL, &article.ImageURL, &article.SourceName,
		&article.Author, &article.PublishedAt, &article.CreatedAt,
		&article.Summary, &article.SummaryGeneratedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM news_articles
ORDER BY published_at DESC NULLS LAST, id DESC
LIMIT $1 OFFSET $2`

	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM news_articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM news_articles
WHERE id = $1`

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

// ExistsByURLBatch checks all URLs in one round trip to avoid N+1 queries
// during ingestion. The pgx driver binds []string as a text array.
func (repo *ArticleRepo) ExistsByURLBatch(ctx context.Context, urls []string) (map[string]bool, error) {
	result := make(map[string]bool, len(urls))
	for _, u := range urls {
		result[u] = false
	}
	if len(urls) == 0 {
		return result, nil
	}

	const query = `SELECT url FROM news_articles WHERE url = ANY($1)`
	rows, err := repo.db.QueryContext(ctx, query, urls)
	if err != nil {
		return nil, fmt.Errorf("ExistsByURLBatch: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("ExistsByURLBatch: Scan: %w", err)
		}
		result[u] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ExistsByURLBatch: rows.Err: %w", err)
	}
	return result, nil
}

// CreateBatch inserts articles inside one transaction. The partial unique
// index on url resolves races with concurrent ingests: conflicting rows are
// dropped by ON CONFLICT DO NOTHING and excluded from the returned count.
func (repo *ArticleRepo) CreateBatch(ctx context.Context, articles []*entity.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("CreateBatch: BeginTx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
INSERT INTO news_articles (title, description, content, url, image_url, source_name, author, published_at, summary, summary_generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (url) WHERE url <> '' DO NOTHING`

	inserted := 0
	for _, article := range articles {
		res, err := tx.ExecContext(ctx, query,
			article.Title, article.Description, article.Content, article.URL,
			article.ImageURL, article.SourceName, article.Author,
			article.PublishedAt, article.Summary, article.SummaryGeneratedAt)
		if err != nil {
			return 0, fmt.Errorf("CreateBatch: ExecContext: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("CreateBatch: RowsAffected: %w", err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("CreateBatch: Commit: %w", err)
	}
	return inserted, nil
}

func (repo *ArticleRepo) PublishedSince(ctx context.Context, since time.Time, limit int) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM news_articles
WHERE published_at >= $1
ORDER BY published_at DESC
LIMIT $2`

	rows, err := repo.db.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("PublishedSince: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("PublishedSince: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) MostRecent(ctx context.Context, limit int) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM news_articles
ORDER BY published_at DESC NULLS LAST, id DESC
LIMIT $1`

	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("MostRecent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("MostRecent: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}
