package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/estate-backend/internal/auth"
	"github.com/JMURv/estate-backend/internal/auth/token"
	"github.com/JMURv/estate-backend/internal/dto"
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/JMURv/estate-backend/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Register creates the user, mints an access token and dispatches
// the verification mail. The mail is best-effort: its failure never
// fails registration.
func (c *Controller) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	const op = "auth.Register.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := c.pswd.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &md.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     md.RoleResident,
	}

	u.ID, err = c.repo.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	access, err := c.au.NewToken(ctx, u)
	if err != nil {
		return nil, err
	}

	go c.sendVerificationEmail(u)

	return &dto.AuthResponse{
		AccessToken: access,
		User: dto.UserSummary{
			ID:    u.ID,
			Email: u.Email,
			Role:  u.Role,
		},
	}, nil
}

func (c *Controller) sendVerificationEmail(u *md.User) {
	const op = "auth.sendVerificationEmail.ctrl"

	raw, err := c.tokens.Issue(context.Background(), token.FamilyVerify, u.ID, nil)
	if err != nil {
		zap.L().Error(
			"failed to issue verification token",
			zap.String("op", op),
			zap.String("uid", u.ID.String()),
			zap.Error(err),
		)
		return
	}

	if err = c.email.SendVerificationEmail(u.Email, raw); err != nil {
		zap.L().Warn(
			"failed to send verification email",
			zap.String("op", op),
			zap.String("uid", u.ID.String()),
			zap.Error(err),
		)
	}
}

// Login authenticates by email and password. Unknown email and bad
// password fail identically so the caller learns nothing about which
// factor was wrong.
func (c *Controller) Login(
	ctx context.Context,
	req *dto.EmailAndPasswordRequest,
	deviceInfo *string,
) (*dto.AuthResponse, string, error) {
	const op = "auth.Login.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Info("login failed", zap.String("op", op), zap.String("reason", "user_not_found"))
			return nil, "", auth.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err = c.pswd.ComparePasswords([]byte(u.Password), []byte(req.Password)); err != nil {
		zap.L().Info("login failed", zap.String("op", op), zap.String("reason", "bad_password"))
		return nil, "", auth.ErrInvalidCredentials
	}

	access, err := c.au.NewToken(ctx, u)
	if err != nil {
		return nil, "", err
	}

	refresh, err := c.tokens.Issue(ctx, token.FamilyRefresh, u.ID, deviceInfo)
	if err != nil {
		return nil, "", err
	}

	return &dto.AuthResponse{
		AccessToken: access,
		User: dto.UserSummary{
			ID:    u.ID,
			Email: u.Email,
			Role:  u.Role,
		},
	}, refresh, nil
}

// Refresh validates the presented refresh secret and always rotates:
// the old token is revoked and a brand-new secret issued, so a replay
// of a stolen-but-used token cannot silently succeed twice.
func (c *Controller) Refresh(ctx context.Context, raw string) (*dto.AuthResponse, string, error) {
	const op = "auth.Refresh.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	t, err := c.tokens.Validate(ctx, token.FamilyRefresh, raw)
	if err != nil {
		return nil, "", err
	}

	u, err := c.repo.GetUserByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Stale session: token outlived its user.
			if revokeErr := c.tokens.Revoke(ctx, t); revokeErr != nil {
				zap.L().Error(
					"failed to revoke stale refresh token",
					zap.String("op", op),
					zap.Error(revokeErr),
				)
			}
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	if err = c.tokens.Revoke(ctx, t); err != nil {
		return nil, "", err
	}

	refresh, err := c.tokens.Issue(ctx, token.FamilyRefresh, u.ID, t.DeviceInfo)
	if err != nil {
		return nil, "", err
	}

	access, err := c.au.NewToken(ctx, u)
	if err != nil {
		return nil, "", err
	}

	return &dto.AuthResponse{
		AccessToken: access,
		User: dto.UserSummary{
			ID:    u.ID,
			Email: u.Email,
			Role:  u.Role,
		},
	}, refresh, nil
}

// Logout revokes the presented refresh token when it is still valid.
// An absent or already-dead token is not an error: the cookie gets
// cleared by the gateway either way.
func (c *Controller) Logout(ctx context.Context, raw string) error {
	const op = "auth.Logout.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if raw == "" {
		return nil
	}

	t, err := c.tokens.Validate(ctx, token.FamilyRefresh, raw)
	if err != nil {
		if errors.Is(err, token.ErrTokenInvalid) {
			return nil
		}
		return err
	}

	return c.tokens.Revoke(ctx, t)
}

// VerifyEmail consumes a verification token and flips the user's
// verified flag.
func (c *Controller) VerifyEmail(ctx context.Context, raw string) error {
	const op = "auth.VerifyEmail.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	t, err := c.tokens.Validate(ctx, token.FamilyVerify, raw)
	if err != nil {
		return err
	}

	if err = c.tokens.Consume(ctx, token.FamilyVerify, t); err != nil {
		return err
	}

	err = c.repo.SetEmailVerified(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Error(
				"verification token references a missing user",
				zap.String("op", op),
				zap.String("uid", t.UserID.String()),
			)
			return ErrNotFound
		}
		return err
	}

	return nil
}

// RequestPasswordReset silently no-ops on unknown emails to prevent
// account enumeration.
func (c *Controller) RequestPasswordReset(ctx context.Context, email string) error {
	const op = "auth.RequestPasswordReset.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		return err
	}

	raw, err := c.tokens.Issue(ctx, token.FamilyReset, u.ID, nil)
	if err != nil {
		return err
	}

	go func() {
		if err := c.email.SendPasswordResetEmail(u.Email, raw); err != nil {
			zap.L().Warn(
				"failed to send password reset email",
				zap.String("op", op),
				zap.String("uid", u.ID.String()),
				zap.Error(err),
			)
		}
	}()

	return nil
}

// ResetPassword validates the reset token, re-hashes the password and
// consumes the token. A valid token pointing at a missing user is a
// server-side integrity fault, logged distinctly.
func (c *Controller) ResetPassword(ctx context.Context, raw, newPassword string) error {
	const op = "auth.ResetPassword.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	t, err := c.tokens.Validate(ctx, token.FamilyReset, raw)
	if err != nil {
		return err
	}

	hash, err := c.pswd.Hash(newPassword)
	if err != nil {
		return err
	}

	err = c.repo.UpdateUserPassword(ctx, t.UserID, hash)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Error(
				"reset token references a missing user",
				zap.String("op", op),
				zap.String("uid", t.UserID.String()),
			)
			return ErrNotFound
		}
		return err
	}

	return c.tokens.Consume(ctx, token.FamilyReset, t)
}
