package jwt

import (
	"context"
	"time"

	"github.com/JMURv/estate-backend/internal/config"
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	NewToken(ctx context.Context, u *md.User) (string, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
}

type Core struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

type Claims struct {
	UID   uuid.UUID `json:"uid"`
	Email string    `json:"email"`
	Role  md.Role   `json:"role"`
	jwt.RegisteredClaims
}

// New builds the access-token signer. The signing secret is a
// process-level requirement, so an empty one is fatal here rather
// than an error on first use.
func New(conf config.Config) *Core {
	if conf.Auth.JWT.Secret == "" {
		zap.L().Fatal("jwt secret is not configured")
	}

	ttl := config.AccessTokenDuration
	if conf.Auth.JWT.AccessExp != "" {
		if parsed, err := time.ParseDuration(conf.Auth.JWT.AccessExp); err == nil {
			ttl = parsed
		}
	}

	return &Core{
		secret:    []byte(conf.Auth.JWT.Secret),
		issuer:    conf.Auth.JWT.Issuer,
		accessTTL: ttl,
	}
}

func (c *Core) NewToken(ctx context.Context, u *md.User) (string, error) {
	const op = "auth.NewToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			UID:   u.ID,
			Email: u.Email,
			Role:  u.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.accessTTL)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		zap.L().Debug(
			"Token is invalid",
			zap.String("op", op),
		)

		return claims, ErrInvalidToken
	}

	return claims, nil
}
