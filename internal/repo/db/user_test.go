package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/JMURv/estate-backend/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return &Repository{conn: sqlxDB}, mock, func() { _ = db.Close() }
}

func TestRepository_GetUserByID(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	testUserID := uuid.New()

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
					WithArgs(testUserID).
					WillReturnRows(
						sqlmock.NewRows(
							[]string{
								"id", "name", "email", "role",
								"is_email_verified", "created_at", "updated_at",
							},
						).AddRow(
							testUserID, "Test User", "test@example.com", "RESIDENT",
							true, time.Now(), time.Now(),
						),
					)
			},
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
					WithArgs(testUserID).
					WillReturnError(sql.ErrNoRows)
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "DBError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
					WithArgs(testUserID).
					WillReturnError(errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.GetUserByID(ctx, testUserID)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
				if errors.Is(tt.expectedErr, repo.ErrNotFound) {
					assert.ErrorIs(t, err, repo.ErrNotFound)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testUserID, result.ID)
				assert.Equal(t, md.RoleResident, result.Role)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetUserByEmail(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	testUserID := uuid.New()
	testEmail := "test@example.com"

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
					WithArgs(testEmail).
					WillReturnRows(
						sqlmock.NewRows(
							[]string{
								"id", "name", "email", "password", "role",
								"is_email_verified", "created_at", "updated_at",
							},
						).AddRow(
							testUserID, "Test User", testEmail, "$2a$10$hash", "MANAGER",
							false, time.Now(), time.Now(),
						),
					)
			},
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
					WithArgs(testEmail).
					WillReturnError(sql.ErrNoRows)
			},
			expectedErr: repo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			result, err := r.GetUserByEmail(ctx, testEmail)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testEmail, result.Email)
				assert.Equal(t, "$2a$10$hash", result.Password)
				assert.Equal(t, md.RoleManager, result.Role)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateUser(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	testUserID := uuid.New()
	testUser := &md.User{
		Name:     "Test User",
		Password: "$2a$10$hash",
		Email:    "test@example.com",
		Role:     md.RoleResident,
	}

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(testUser.Name, testUser.Password, testUser.Email, testUser.Role).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testUserID))
			},
		},
		{
			name: "AlreadyExists",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(testUser.Name, testUser.Password, testUser.Email, testUser.Role).
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			expectedErr: repo.ErrAlreadyExists,
		},
		{
			name: "DBError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(testUser.Name, testUser.Password, testUser.Email, testUser.Role).
					WillReturnError(errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			id, err := r.CreateUser(ctx, testUser)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, id)
				if errors.Is(tt.expectedErr, repo.ErrAlreadyExists) {
					assert.ErrorIs(t, err, repo.ErrAlreadyExists)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testUserID, id)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateUserPassword(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	testUserID := uuid.New()
	testHash := "$2a$10$newhash"

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userUpdatePasswordQ)).
					WithArgs(testHash, testUserID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userUpdatePasswordQ)).
					WithArgs(testHash, testUserID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "DBError",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userUpdatePasswordQ)).
					WithArgs(testHash, testUserID).
					WillReturnError(errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			err := r.UpdateUserPassword(ctx, testUserID, testHash)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, repo.ErrNotFound) {
					assert.ErrorIs(t, err, repo.ErrNotFound)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetEmailVerified(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	testUserID := uuid.New()

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userSetEmailVerifiedQ)).
					WithArgs(testUserID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userSetEmailVerifiedQ)).
					WithArgs(testUserID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: repo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			err := r.SetEmailVerified(ctx, testUserID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
