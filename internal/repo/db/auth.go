package db

import (
	"context"

	"github.com/JMURv/estate-backend/internal/auth/token"
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/JMURv/estate-backend/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type tokenQueries struct {
	create     string
	candidates string
	markUsed   string
}

var tokenQ = map[token.Family]tokenQueries{
	token.FamilyRefresh: {
		create:     refreshCreateQ,
		candidates: refreshCandidatesQ,
	},
	token.FamilyVerify: {
		create:     verifyCreateQ,
		candidates: verifyCandidatesQ,
		markUsed:   verifyMarkUsedQ,
	},
	token.FamilyReset: {
		create:     resetCreateQ,
		candidates: resetCandidatesQ,
		markUsed:   resetMarkUsedQ,
	},
}

func (r *Repository) CreateToken(ctx context.Context, family token.Family, t *md.Token) error {
	const op = "auth.CreateToken.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, ok := tokenQ[family]
	if !ok {
		return repo.ErrNotFound
	}

	var err error
	if family == token.FamilyRefresh {
		_, err = r.conn.ExecContext(
			ctx, q.create, t.ID, t.UserID, t.TokenHash, t.TokenHint, t.DeviceInfo, t.ExpiresAt,
		)
	} else {
		_, err = r.conn.ExecContext(
			ctx, q.create, t.ID, t.UserID, t.TokenHash, t.TokenHint, t.ExpiresAt,
		)
	}

	return err
}

func (r *Repository) GetTokenCandidates(
	ctx context.Context,
	family token.Family,
	hint string,
) ([]*md.Token, error) {
	const op = "auth.GetTokenCandidates.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, ok := tokenQ[family]
	if !ok {
		return nil, repo.ErrNotFound
	}

	res := make([]*md.Token, 0, 1)
	if err := r.conn.SelectContext(ctx, &res, q.candidates, hint); err != nil {
		return nil, err
	}

	return res, nil
}

// MarkTokenUsed is the terminal flip for verification and reset
// tokens. The WHERE guard keeps it idempotent under races.
func (r *Repository) MarkTokenUsed(ctx context.Context, family token.Family, id uuid.UUID) error {
	const op = "auth.MarkTokenUsed.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, ok := tokenQ[family]
	if !ok || q.markUsed == "" {
		return repo.ErrNotFound
	}

	_, err := r.conn.ExecContext(ctx, q.markUsed, id)
	return err
}

func (r *Repository) MarkTokenRevoked(ctx context.Context, id uuid.UUID) error {
	const op = "auth.MarkTokenRevoked.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, refreshRevokeQ, id)
	return err
}

func (r *Repository) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	const op = "auth.RevokeAllTokens.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, refreshRevokeAllQ, userID)
	return err
}
