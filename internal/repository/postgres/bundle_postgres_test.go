package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"examdocs/internal/model"
	"examdocs/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var columns = []string{"id", "filename", "storage_path", "size", "content_type", "course", "exam_type", "room_count", "student_count", "created_at"}

func TestBundlePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBundlePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	b := &model.Bundle{
		ID:           "test-uuid",
		Filename:     "exam_documents.zip",
		StoragePath:  "bundles/test-uuid.zip",
		Size:         2048,
		ContentType:  "application/zip",
		Course:       "Algorithms",
		ExamType:     "Final Exam",
		RoomCount:    3,
		StudentCount: 144,
		CreatedAt:    now,
	}

	rows := sqlmock.NewRows(columns).
		AddRow(b.ID, b.Filename, b.StoragePath, b.Size, b.ContentType, b.Course, b.ExamType, b.RoomCount, b.StudentCount, b.CreatedAt)

	mock.ExpectQuery("INSERT INTO bundles").
		WithArgs(b.ID, b.Filename, b.StoragePath, b.Size, b.ContentType, b.Course, b.ExamType, b.RoomCount, b.StudentCount, b.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, b)

	assert.NoError(t, err)
	assert.Equal(t, b, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBundlePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBundlePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow("test-id", "exam_documents.zip", "bundles/test-id.zip", 100, "application/zip", "Physics", "Midterm Exam", 2, 80, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM bundles WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		b, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.Equal(t, "test-id", b.ID)
		assert.Equal(t, 80, b.StudentCount)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bundles WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		b, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, b)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bundles WHERE id = ?").
			WithArgs("broken").
			WillReturnError(errors.New("conn reset"))

		_, err := repo.FindByID(ctx, "broken")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestBundlePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBundlePostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bundles").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(columns).
			AddRow("test-id", "exam_documents.zip", "bundles/test-id.zip", 100, "application/zip", "Physics", "Midterm Exam", 2, 80, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM bundles ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bundles").
			WillReturnError(errors.New("timeout"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestBundlePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBundlePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM bundles WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
