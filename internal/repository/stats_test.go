package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/vaultpass/passmeter/internal/model"
)

func TestRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewStatsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO assessment_events (source, score, label) VALUES (?, ?, ?)`,
	)).
		WithArgs(model.SourceEvaluate, 1, "Weak").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Record(context.Background(), model.StatsEvent{Source: model.SourceEvaluate, Score: 1, Label: "Weak"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRecord_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewStatsRepository(db)
	want := errors.New("connection reset")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO assessment_events`)).WillReturnError(want)

	err = repo.Record(context.Background(), model.StatsEvent{Source: model.SourceGenerate, Score: 4, Label: "Strong"})
	if !errors.Is(err, want) {
		t.Fatalf("want %v, got %v", want, err)
	}
}

func TestSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT label, COUNT(*) FROM assessment_events GROUP BY label`,
	)).WillReturnRows(
		sqlmock.NewRows([]string{"label", "count"}).
			AddRow("Weak", 5).
			AddRow("Moderate", 3).
			AddRow("Strong", 2),
	)

	got, err := repo.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Total != 10 {
		t.Errorf("want total=10, got %d", got.Total)
	}
	if got.ByLabel["Weak"] != 5 || got.ByLabel["Moderate"] != 3 || got.ByLabel["Strong"] != 2 {
		t.Errorf("unexpected by_label %+v", got.ByLabel)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummary_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT label, COUNT(*)`)).
		WillReturnRows(sqlmock.NewRows([]string{"label", "count"}))

	got, err := repo.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Total != 0 || len(got.ByLabel) != 0 || got.ByLabel == nil {
		t.Errorf("want empty non-nil summary, got %+v", got)
	}
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS assessment_events`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
