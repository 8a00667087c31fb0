package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JMURv/estate-backend/internal/auth/token"
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/JMURv/estate-backend/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateToken(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	deviceInfo := "test-user-agent"
	testToken := &md.Token{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		TokenHash:  "$2a$10$hash",
		TokenHint:  "0123456789",
		DeviceInfo: &deviceInfo,
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	t.Run("Refresh", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(refreshCreateQ)).
			WithArgs(
				testToken.ID,
				testToken.UserID,
				testToken.TokenHash,
				testToken.TokenHint,
				testToken.DeviceInfo,
				testToken.ExpiresAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.CreateToken(ctx, token.FamilyRefresh, testToken))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Verify", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(verifyCreateQ)).
			WithArgs(
				testToken.ID,
				testToken.UserID,
				testToken.TokenHash,
				testToken.TokenHint,
				testToken.ExpiresAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.CreateToken(ctx, token.FamilyVerify, testToken))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Reset", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(resetCreateQ)).
			WithArgs(
				testToken.ID,
				testToken.UserID,
				testToken.TokenHash,
				testToken.TokenHint,
				testToken.ExpiresAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.CreateToken(ctx, token.FamilyReset, testToken))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownFamily", func(t *testing.T) {
		assert.ErrorIs(
			t,
			r.CreateToken(ctx, token.Family("bogus"), testToken),
			repo.ErrNotFound,
		)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(refreshCreateQ)).
			WillReturnError(errors.New("db error"))

		assert.Error(t, r.CreateToken(ctx, token.FamilyRefresh, testToken))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetTokenCandidates(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	testHint := "0123456789"
	testUserID := uuid.New()
	deviceInfo := "test-user-agent"

	t.Run("Refresh", func(t *testing.T) {
		tokenID := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(refreshCandidatesQ)).
			WithArgs(testHint).
			WillReturnRows(
				sqlmock.NewRows(
					[]string{
						"id", "user_id", "token_hash", "token_hint",
						"device_info", "expires_at", "revoked", "created_at",
					},
				).AddRow(
					tokenID, testUserID, "$2a$10$hash", testHint,
					deviceInfo, time.Now().Add(time.Hour), false, time.Now(),
				),
			)

		result, err := r.GetTokenCandidates(ctx, token.FamilyRefresh, testHint)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, tokenID, result[0].ID)
		assert.Equal(t, &deviceInfo, result[0].DeviceInfo)
		assert.False(t, result[0].Revoked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("VerifyEmpty", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(verifyCandidatesQ)).
			WithArgs(testHint).
			WillReturnRows(
				sqlmock.NewRows(
					[]string{
						"id", "user_id", "token_hash", "token_hint",
						"expires_at", "used", "created_at",
					},
				),
			)

		result, err := r.GetTokenCandidates(ctx, token.FamilyVerify, testHint)
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownFamily", func(t *testing.T) {
		_, err := r.GetTokenCandidates(ctx, token.Family("bogus"), testHint)
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(resetCandidatesQ)).
			WithArgs(testHint).
			WillReturnError(errors.New("db error"))

		_, err := r.GetTokenCandidates(ctx, token.FamilyReset, testHint)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_MarkTokenUsed(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	testTokenID := uuid.New()

	t.Run("Verify", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(verifyMarkUsedQ)).
			WithArgs(testTokenID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.MarkTokenUsed(ctx, token.FamilyVerify, testTokenID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Reset", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(resetMarkUsedQ)).
			WithArgs(testTokenID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.MarkTokenUsed(ctx, token.FamilyReset, testTokenID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RefreshHasNoUsedFlag", func(t *testing.T) {
		assert.ErrorIs(
			t,
			r.MarkTokenUsed(ctx, token.FamilyRefresh, testTokenID),
			repo.ErrNotFound,
		)
	})
}

func TestRepository_MarkTokenRevoked(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	testTokenID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(refreshRevokeQ)).
		WithArgs(testTokenID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, r.MarkTokenRevoked(ctx, testTokenID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RevokeAllTokens(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	testUserID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(refreshRevokeAllQ)).
		WithArgs(testUserID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	assert.NoError(t, r.RevokeAllTokens(ctx, testUserID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
