package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/JMURv/estate-backend/internal/config"
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Family selects one of the independent token ledgers.
type Family string

const (
	FamilyRefresh Family = "refresh"
	FamilyVerify  Family = "email_verification"
	FamilyReset   Family = "password_reset"
)

const (
	secretBytes = 32
	hintLen     = 10
	hashCost    = 10
)

// Per-family expiry defaults, used when config carries nothing.
const (
	defaultRefreshExp = time.Hour * 24 * 30
	defaultVerifyExp  = time.Hour * 24
	defaultResetExp   = time.Minute * 30
)

type Port interface {
	Issue(ctx context.Context, family Family, userID uuid.UUID, deviceInfo *string) (string, error)
	Validate(ctx context.Context, family Family, raw string) (*md.Token, error)
	Consume(ctx context.Context, family Family, t *md.Token) error
	Revoke(ctx context.Context, t *md.Token) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	TTL(family Family) time.Duration
}

type Repo interface {
	CreateToken(ctx context.Context, family Family, t *md.Token) error
	GetTokenCandidates(ctx context.Context, family Family, hint string) ([]*md.Token, error)
	MarkTokenUsed(ctx context.Context, family Family, id uuid.UUID) error
	MarkTokenRevoked(ctx context.Context, id uuid.UUID) error
	RevokeAllTokens(ctx context.Context, userID uuid.UUID) error
}

type Core struct {
	repo Repo
	ttl  map[Family]time.Duration
}

func New(conf config.Config, repo Repo) *Core {
	return &Core{
		repo: repo,
		ttl: map[Family]time.Duration{
			FamilyRefresh: parseExpiry(conf.Auth.Token.RefreshExp, defaultRefreshExp),
			FamilyVerify:  parseExpiry(conf.Auth.Token.VerifyExp, defaultVerifyExp),
			FamilyReset:   parseExpiry(conf.Auth.Token.ResetExp, defaultResetExp),
		},
	}
}

// parseExpiry converts suffix notation like "15m" or "30d" into a
// duration, falling back to the family default on anything it does
// not recognize.
func parseExpiry(exp string, fallback time.Duration) time.Duration {
	if len(exp) < 2 {
		return fallback
	}

	num, err := strconv.Atoi(exp[:len(exp)-1])
	if err != nil || num <= 0 {
		return fallback
	}

	switch exp[len(exp)-1] {
	case 's':
		return time.Duration(num) * time.Second
	case 'm':
		return time.Duration(num) * time.Minute
	case 'h':
		return time.Duration(num) * time.Hour
	case 'd':
		return time.Duration(num) * time.Hour * 24
	default:
		return fallback
	}
}

func (c *Core) TTL(family Family) time.Duration {
	return c.ttl[family]
}

// Issue generates a fresh opaque secret, persists its hash and
// returns the raw value. The raw secret is never stored or logged.
func (c *Core) Issue(
	ctx context.Context,
	family Family,
	userID uuid.UUID,
	deviceInfo *string,
) (string, error) {
	const op = "token.Issue.svc"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		zap.L().Error("failed to generate token secret", zap.String("op", op), zap.Error(err))
		return "", err
	}
	raw := hex.EncodeToString(buf)

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), hashCost)
	if err != nil {
		zap.L().Error("failed to hash token secret", zap.String("op", op), zap.Error(err))
		return "", err
	}

	err = c.repo.CreateToken(
		ctx, family, &md.Token{
			ID:         uuid.New(),
			UserID:     userID,
			TokenHash:  string(hash),
			TokenHint:  raw[:hintLen],
			DeviceInfo: deviceInfo,
			ExpiresAt:  time.Now().Add(c.ttl[family]),
		},
	)
	if err != nil {
		return "", err
	}

	return raw, nil
}

// Validate resolves a raw secret to its ledger row. The hint prefix
// narrows the candidate set so validation never scans the whole
// family; the hash comparison itself decides. Failure is uniform:
// invalid, expired and consumed all come back as ErrTokenInvalid.
func (c *Core) Validate(ctx context.Context, family Family, raw string) (*md.Token, error) {
	const op = "token.Validate.svc"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if len(raw) < hintLen {
		return nil, ErrTokenInvalid
	}

	candidates, err := c.repo.GetTokenCandidates(ctx, family, raw[:hintLen])
	if err != nil {
		return nil, err
	}

	for _, t := range candidates {
		if err = bcrypt.CompareHashAndPassword([]byte(t.TokenHash), []byte(raw)); err != nil {
			continue
		}

		if t.IsTerminal() || !t.ExpiresAt.After(time.Now()) {
			continue
		}

		return t, nil
	}

	return nil, ErrTokenInvalid
}

// Consume marks a verification or reset token as used. A no-op when
// the token is already terminal.
func (c *Core) Consume(ctx context.Context, family Family, t *md.Token) error {
	const op = "token.Consume.svc"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if t.Used {
		return nil
	}

	if err := c.repo.MarkTokenUsed(ctx, family, t.ID); err != nil {
		return err
	}

	t.Used = true
	return nil
}

// Revoke marks a refresh token as revoked. Idempotent.
func (c *Core) Revoke(ctx context.Context, t *md.Token) error {
	const op = "token.Revoke.svc"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if t.Revoked {
		return nil
	}

	if err := c.repo.MarkTokenRevoked(ctx, t.ID); err != nil {
		return err
	}

	t.Revoked = true
	return nil
}

// RevokeAllForUser bulk-revokes the user's refresh tokens
// (logout-everywhere).
func (c *Core) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	const op = "token.RevokeAllForUser.svc"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.RevokeAllTokens(ctx, userID)
}
