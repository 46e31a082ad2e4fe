package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"news-agent/internal/domain/entity"
	pg "news-agent/internal/infra/adapter/persistence/postgres"
)

func TestSourceRepo_ListActive(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE active = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "url", "source_type", "api_key", "active", "created_at",
		}).AddRow(1, "El País", "https://elpais.com/rss", "rss", nil, true, now))

	repo := pg.NewSourceRepo(db)
	got, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive err=%v", err)
	}
	if len(got) != 1 || got[0].Name != "El País" || got[0].APIKey != "" {
		t.Fatalf("ListActive = %+v", got)
	}
}

func TestSourceRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO news_sources")).
		WithArgs("NewsAPI", "", "api", "secret", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	repo := pg.NewSourceRepo(db)
	src := &entity.NewsSource{Name: "NewsAPI", SourceType: "api", APIKey: "secret", Active: true}
	if err := repo.Create(context.Background(), src); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if src.ID != 7 {
		t.Errorf("ID = %d, want 7", src.ID)
	}
	if src.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
