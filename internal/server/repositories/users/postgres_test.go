package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/server/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostgresCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "Maria Santos", "manager@printflow.ph", "hash", models.RoleManager).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	u, err := repo.Create(context.Background(), &models.User{
		Name:         "Maria Santos",
		Email:        "manager@printflow.ph",
		PasswordHash: "hash",
		Role:         models.RoleManager,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !u.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at %v, got %v", created, u.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs("ghost@printflow.ph").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@printflow.ph")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestPostgresGetByEmail_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	last := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at", "last_login"}).
		AddRow("u1", "Admin User", "admin@printflow.ph", "hash", "admin", time.Now(), last)

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs("admin@printflow.ph").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "admin@printflow.ph")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Fatalf("expected role admin, got %q", u.Role)
	}
	if u.LastLogin == nil || !u.LastLogin.Equal(last) {
		t.Fatalf("expected last_login %v, got %v", last, u.LastLogin)
	}
}

func TestPostgresTouchLastLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	at := time.Now()
	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs("u1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchLastLogin(context.Background(), "u1", at); err != nil {
		t.Fatalf("TouchLastLogin error: %v", err)
	}
}
