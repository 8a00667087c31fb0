package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/estate-backend/internal/auth/token"
	"github.com/JMURv/estate-backend/internal/dto"
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/google/uuid"
)

type AppRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	CreateUser(ctx context.Context, u *md.User) (uuid.UUID, error)
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, hash string) error
	SetEmailVerified(ctx context.Context, userID uuid.UUID) error

	CreateDevice(ctx context.Context, d *md.Device) (uuid.UUID, error)
	GetDeviceByID(ctx context.Context, deviceID uuid.UUID) (*md.Device, error)
	ListUserDevices(ctx context.Context, userID uuid.UUID) ([]*md.Device, error)
	ListEstateDevices(ctx context.Context) ([]*md.Device, error)
	ControlDevice(
		ctx context.Context,
		actorID uuid.UUID,
		role md.Role,
		deviceID uuid.UUID,
		action string,
		value any,
	) (*md.Device, error)
	ListDeviceLogs(ctx context.Context, deviceID uuid.UUID) ([]*md.DeviceLog, error)
}

type AppCtrl interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.EmailAndPasswordRequest, deviceInfo *string) (*dto.AuthResponse, string, error)
	Refresh(ctx context.Context, raw string) (*dto.AuthResponse, string, error)
	Logout(ctx context.Context, raw string) error
	VerifyEmail(ctx context.Context, raw string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, raw, newPassword string) error

	CreateDevice(ctx context.Context, uid uuid.UUID, role md.Role, req *dto.CreateDeviceRequest) (*md.Device, error)
	ControlDevice(ctx context.Context, uid uuid.UUID, role md.Role, deviceID uuid.UUID, req *dto.ControlDeviceRequest) (*dto.ControlDeviceResponse, error)
	GetDeviceLogs(ctx context.Context, uid uuid.UUID, role md.Role, deviceID uuid.UUID) ([]*md.DeviceLog, error)
	ListUserDevices(ctx context.Context, uid uuid.UUID) ([]*md.Device, error)
	ListEstateDevices(ctx context.Context) ([]*md.Device, error)
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	Hash(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
}

// AccessTokenService mints and parses signed access tokens.
type AccessTokenService interface {
	NewToken(ctx context.Context, u *md.User) (string, error)
}

// EmailService delivers out-of-band mails. Failures are logged by
// the implementation and never fail the primary operation.
type EmailService interface {
	SendVerificationEmail(email, rawToken string) error
	SendPasswordResetEmail(email, rawToken string) error
}

// Notifier pushes device updates to connected realtime clients.
type Notifier interface {
	NotifyDeviceUpdate(d *md.Device)
}

type Controller struct {
	au       AccessTokenService
	pswd     PasswordService
	tokens   token.Port
	repo     AppRepo
	cache    CacheService
	email    EmailService
	notifier Notifier
}

func New(
	au AccessTokenService,
	pswd PasswordService,
	tokens token.Port,
	repo AppRepo,
	cache CacheService,
	email EmailService,
	notifier Notifier,
) *Controller {
	return &Controller{
		au:       au,
		pswd:     pswd,
		tokens:   tokens,
		repo:     repo,
		cache:    cache,
		email:    email,
		notifier: notifier,
	}
}
