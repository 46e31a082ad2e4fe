package postgres_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"news-agent/internal/domain/entity"
	pg "news-agent/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── helpers ─────────────────────────── */

func artRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "content", "url", "image_url",
		"source_name", "author", "published_at", "created_at",
		"summary", "summary_generated_at",
	}).AddRow(
		a.ID, a.Title, a.Description, a.Content, a.URL, a.ImageURL,
		a.SourceName, a.Author, a.PublishedAt, a.CreatedAt,
		a.Summary, a.SummaryGeneratedAt,
	)
}

func strPtr(s string) *string { return &s }

// textArrayConverter accepts []string the way the pgx stdlib driver does for
// = ANY($1) bindings; sqlmock's default converter rejects slices.
type textArrayConverter struct{}

func (textArrayConverter) ConvertValue(v any) (driver.Value, error) {
	if _, ok := v.([]string); ok {
		return v, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

/* ─────────────────────────── Get ─────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	want := &entity.Article{
		ID: 1, Title: "Titular", Description: "desc", Content: "cuerpo",
		URL: "https://example.com/n/1", SourceName: "example.com",
		PublishedAt: &now, CreatedAt: now,
		Summary: strPtr("Resumen corto."), SummaryGeneratedAt: &now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(artRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := pg.NewArticleRepo(db)
	_, err := repo.Get(context.Background(), 99)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err=%v, want entity.ErrNotFound", err)
	}
}

/* ─────────────────────────── ListPaginated / Count ─────────────────────────── */

func TestArticleRepo_ListPaginated(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM news_articles").
		WithArgs(10, 20).
		WillReturnRows(artRow(&entity.Article{
			ID: 1, Title: "x", URL: "https://example.com/x",
			PublishedAt: &now, CreatedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListPaginated(context.Background(), 20, 10)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListPaginated err=%v len=%d", err, len(got))
	}
}

func TestArticleRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM news_articles")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Count(context.Background())
	if err != nil || got != 25 {
		t.Fatalf("Count=%d err=%v, want 25", got, err)
	}
}

/* ─────────────────────────── ExistsByURLBatch ─────────────────────────── */

func TestArticleRepo_ExistsByURLBatch(t *testing.T) {
	db, mock, _ := sqlmock.New(sqlmock.ValueConverterOption(textArrayConverter{}))
	defer func() { _ = db.Close() }()

	urls := []string{"https://a.example/1", "https://a.example/2"}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT url FROM news_articles WHERE url = ANY($1)")).
		WillReturnRows(sqlmock.NewRows([]string{"url"}).AddRow("https://a.example/1"))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ExistsByURLBatch(context.Background(), urls)
	if err != nil {
		t.Fatalf("ExistsByURLBatch err=%v", err)
	}
	if !got["https://a.example/1"] || got["https://a.example/2"] {
		t.Fatalf("ExistsByURLBatch = %v", got)
	}
}

func TestArticleRepo_ExistsByURLBatch_Empty(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := pg.NewArticleRepo(db)
	got, err := repo.ExistsByURLBatch(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("ExistsByURLBatch(nil) = %v err=%v", got, err)
	}
}

/* ─────────────────────────── CreateBatch ─────────────────────────── */

func TestArticleRepo_CreateBatch(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	articles := []*entity.Article{
		{Title: "a", URL: "https://a.example/1", PublishedAt: &now},
		{Title: "b", URL: "https://a.example/2", PublishedAt: &now},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO news_articles")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// second row conflicts on url and inserts nothing
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO news_articles")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := pg.NewArticleRepo(db)
	inserted, err := repo.CreateBatch(context.Background(), articles)
	if err != nil {
		t.Fatalf("CreateBatch err=%v", err)
	}
	if inserted != 1 {
		t.Fatalf("inserted=%d, want 1", inserted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_CreateBatch_RollsBackOnError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO news_articles")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	repo := pg.NewArticleRepo(db)
	_, err := repo.CreateBatch(context.Background(), []*entity.Article{{Title: "a"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_CreateBatch_EmptyInput(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := pg.NewArticleRepo(db)
	inserted, err := repo.CreateBatch(context.Background(), nil)
	if err != nil || inserted != 0 {
		t.Fatalf("CreateBatch(nil) = %d, %v", inserted, err)
	}
}

/* ─────────────────────────── digest windows ─────────────────────────── */

func TestArticleRepo_PublishedSince(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	since := now.Add(-24 * time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE published_at >= $1")).
		WithArgs(since, 10).
		WillReturnRows(artRow(&entity.Article{
			ID: 1, Title: "fresh", PublishedAt: &now, CreatedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.PublishedSince(context.Background(), since, 10)
	if err != nil || len(got) != 1 {
		t.Fatalf("PublishedSince err=%v len=%d", err, len(got))
	}
}

func TestArticleRepo_MostRecent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM news_articles").
		WithArgs(5).
		WillReturnRows(artRow(&entity.Article{
			ID: 2, Title: "older", PublishedAt: &now, CreatedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.MostRecent(context.Background(), 5)
	if err != nil || len(got) != 1 {
		t.Fatalf("MostRecent err=%v len=%d", err, len(got))
	}
}
