package ctrl

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JMURv/estate-backend/internal/config"
	"github.com/JMURv/estate-backend/internal/dto"
	"github.com/JMURv/estate-backend/internal/models"
	"github.com/JMURv/estate-backend/internal/repo"
	"github.com/JMURv/estate-backend/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_ListUserDevices(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAu := mocks.NewMockAccessTokenService(ctrlMock)
	mockPswd := mocks.NewMockPasswordService(ctrlMock)
	mockTokens := mocks.NewMockTokenPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)
	mockNotifier := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAu, mockPswd, mockTokens, mockRepo, mockCache, mockEmail, mockNotifier)

	testUserID := uuid.New()
	cacheKey := fmt.Sprintf("devices-user:%v", testUserID)
	testDevices := []*models.Device{
		{ID: uuid.New(), OwnerID: &testUserID, Name: "Thermostat", DeviceType: "thermostat"},
		{ID: uuid.New(), OwnerID: &testUserID, Name: "Lamp", DeviceType: "light"},
	}

	tests := []struct {
		name     string
		setup    func()
		expected []*models.Device
		wantErr  bool
	}{
		{
			name: "CacheHit",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					DoAndReturn(
						func(_ context.Context, _ string, dest any) error {
							*dest.(*[]*models.Device) = testDevices
							return nil
						},
					)
			},
			expected: testDevices,
			wantErr:  false,
		},
		{
			name: "CacheMiss",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					ListUserDevices(gomock.Any(), testUserID).
					Return(testDevices, nil)
				mockCache.EXPECT().
					Set(gomock.Any(), config.DefaultCacheTime, cacheKey, gomock.Any())
			},
			expected: testDevices,
			wantErr:  false,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					ListUserDevices(gomock.Any(), testUserID).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := ctrl.ListUserDevices(ctx, testUserID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestController_ListEstateDevices(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAu := mocks.NewMockAccessTokenService(ctrlMock)
	mockPswd := mocks.NewMockPasswordService(ctrlMock)
	mockTokens := mocks.NewMockTokenPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)
	mockNotifier := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAu, mockPswd, mockTokens, mockRepo, mockCache, mockEmail, mockNotifier)

	testDevices := []*models.Device{
		{ID: uuid.New(), Name: "Boiler", DeviceType: "heating", IsEstateLevel: true},
	}

	tests := []struct {
		name     string
		setup    func()
		expected []*models.Device
		wantErr  bool
	}{
		{
			name: "CacheHit",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "devices-estate", gomock.Any()).
					DoAndReturn(
						func(_ context.Context, _ string, dest any) error {
							*dest.(*[]*models.Device) = testDevices
							return nil
						},
					)
			},
			expected: testDevices,
			wantErr:  false,
		},
		{
			name: "CacheMiss",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "devices-estate", gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					ListEstateDevices(gomock.Any()).
					Return(testDevices, nil)
				mockCache.EXPECT().
					Set(gomock.Any(), config.DefaultCacheTime, "devices-estate", gomock.Any())
			},
			expected: testDevices,
			wantErr:  false,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "devices-estate", gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					ListEstateDevices(gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := ctrl.ListEstateDevices(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestController_CreateDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAu := mocks.NewMockAccessTokenService(ctrlMock)
	mockPswd := mocks.NewMockPasswordService(ctrlMock)
	mockTokens := mocks.NewMockTokenPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)
	mockNotifier := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAu, mockPswd, mockTokens, mockRepo, mockCache, mockEmail, mockNotifier)

	testUserID := uuid.New()
	testDeviceID := uuid.New()
	testUser := &models.User{ID: testUserID, Role: models.RoleResident}

	expectAsync := func() func() {
		invalidated := make(chan struct{})
		notified := make(chan struct{})
		mockCache.EXPECT().
			InvalidateKeysByPattern(gomock.Any(), "devices-*").
			Do(func(context.Context, string) { close(invalidated) })
		mockNotifier.EXPECT().
			NotifyDeviceUpdate(gomock.Any()).
			Do(func(*models.Device) { close(notified) })
		return func() {
			<-invalidated
			<-notified
		}
	}

	tests := []struct {
		name    string
		setup   func() func()
		role    models.Role
		input   *dto.CreateDeviceRequest
		wantErr bool
		err     error
	}{
		{
			name: "SuccessOwned",
			setup: func() func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUserID).
					Return(testUser, nil)
				mockRepo.EXPECT().
					CreateDevice(gomock.Any(), gomock.Any()).
					Return(testDeviceID, nil)
				return expectAsync()
			},
			role: models.RoleResident,
			input: &dto.CreateDeviceRequest{
				Name:       "Thermostat",
				DeviceType: "thermostat",
			},
			wantErr: false,
		},
		{
			name: "SuccessEstate",
			setup: func() func() {
				mockRepo.EXPECT().
					CreateDevice(gomock.Any(), gomock.Any()).
					Return(testDeviceID, nil)
				return expectAsync()
			},
			role: models.RoleManager,
			input: &dto.CreateDeviceRequest{
				Name:          "Boiler",
				DeviceType:    "heating",
				IsEstateLevel: true,
			},
			wantErr: false,
		},
		{
			name:  "EstateForbiddenForResident",
			setup: func() func() { return nil },
			role:  models.RoleResident,
			input: &dto.CreateDeviceRequest{
				Name:          "Boiler",
				DeviceType:    "heating",
				IsEstateLevel: true,
			},
			wantErr: true,
			err:     ErrForbidden,
		},
		{
			name: "OwnerMissing",
			setup: func() func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUserID).
					Return(nil, repo.ErrNotFound)
				return nil
			},
			role: models.RoleResident,
			input: &dto.CreateDeviceRequest{
				Name:       "Thermostat",
				DeviceType: "thermostat",
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name: "RepositoryError",
			setup: func() func() {
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUserID).
					Return(testUser, nil)
				mockRepo.EXPECT().
					CreateDevice(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, errors.New("db error"))
				return nil
			},
			role: models.RoleResident,
			input: &dto.CreateDeviceRequest{
				Name:       "Thermostat",
				DeviceType: "thermostat",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wait := tt.setup()

			result, err := ctrl.CreateDevice(ctx, testUserID, tt.role, tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testDeviceID, result.ID)
				assert.Equal(t, tt.input.Name, result.Name)
				if tt.input.IsEstateLevel {
					assert.Nil(t, result.OwnerID)
				} else {
					assert.Equal(t, testUserID, *result.OwnerID)
				}
			}

			if wait != nil {
				wait()
			}
		})
	}
}

func TestController_ControlDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAu := mocks.NewMockAccessTokenService(ctrlMock)
	mockPswd := mocks.NewMockPasswordService(ctrlMock)
	mockTokens := mocks.NewMockTokenPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)
	mockNotifier := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAu, mockPswd, mockTokens, mockRepo, mockCache, mockEmail, mockNotifier)

	testUserID := uuid.New()
	testDeviceID := uuid.New()
	testRequest := &dto.ControlDeviceRequest{Action: models.ActionOn}
	testDevice := &models.Device{
		ID:      testDeviceID,
		OwnerID: &testUserID,
		Name:    "Thermostat",
		IsOn:    true,
	}

	tests := []struct {
		name    string
		setup   func() func()
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() func() {
				invalidated := make(chan struct{})
				notified := make(chan struct{})
				mockRepo.EXPECT().
					ControlDevice(
						gomock.Any(),
						testUserID,
						models.RoleResident,
						testDeviceID,
						models.ActionOn,
						nil,
					).
					Return(testDevice, nil)
				mockCache.EXPECT().
					InvalidateKeysByPattern(gomock.Any(), "devices-*").
					Do(func(context.Context, string) { close(invalidated) })
				mockNotifier.EXPECT().
					NotifyDeviceUpdate(testDevice).
					Do(func(*models.Device) { close(notified) })
				return func() {
					<-invalidated
					<-notified
				}
			},
			wantErr: false,
		},
		{
			name: "NotFound",
			setup: func() func() {
				mockRepo.EXPECT().
					ControlDevice(
						gomock.Any(),
						testUserID,
						models.RoleResident,
						testDeviceID,
						models.ActionOn,
						nil,
					).
					Return(nil, repo.ErrNotFound)
				return nil
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name: "Forbidden",
			setup: func() func() {
				mockRepo.EXPECT().
					ControlDevice(
						gomock.Any(),
						testUserID,
						models.RoleResident,
						testDeviceID,
						models.ActionOn,
						nil,
					).
					Return(nil, repo.ErrForbidden)
				return nil
			},
			wantErr: true,
			err:     ErrForbidden,
		},
		{
			name: "RepositoryError",
			setup: func() func() {
				mockRepo.EXPECT().
					ControlDevice(
						gomock.Any(),
						testUserID,
						models.RoleResident,
						testDeviceID,
						models.ActionOn,
						nil,
					).
					Return(nil, errors.New("db error"))
				return nil
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wait := tt.setup()

			result, err := ctrl.ControlDevice(
				ctx,
				testUserID,
				models.RoleResident,
				testDeviceID,
				testRequest,
			)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testDeviceID, result.ID)
				assert.True(t, result.IsOn)
			}

			if wait != nil {
				wait()
			}
		})
	}
}

func TestController_GetDeviceLogs(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAu := mocks.NewMockAccessTokenService(ctrlMock)
	mockPswd := mocks.NewMockPasswordService(ctrlMock)
	mockTokens := mocks.NewMockTokenPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)
	mockNotifier := mocks.NewMockNotifier(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAu, mockPswd, mockTokens, mockRepo, mockCache, mockEmail, mockNotifier)

	testUserID := uuid.New()
	otherUserID := uuid.New()
	testDeviceID := uuid.New()
	ownedDevice := &models.Device{ID: testDeviceID, OwnerID: &testUserID}
	foreignDevice := &models.Device{ID: testDeviceID, OwnerID: &otherUserID}
	estateDevice := &models.Device{ID: testDeviceID, IsEstateLevel: true}
	testLogs := []*models.DeviceLog{
		{ID: 2, DeviceID: testDeviceID, Action: models.ActionOff},
		{ID: 1, DeviceID: testDeviceID, Action: models.ActionOn},
	}

	tests := []struct {
		name    string
		setup   func()
		role    models.Role
		wantErr bool
		err     error
	}{
		{
			name: "SuccessOwner",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testDeviceID).
					Return(ownedDevice, nil)
				mockRepo.EXPECT().
					ListDeviceLogs(gomock.Any(), testDeviceID).
					Return(testLogs, nil)
			},
			role:    models.RoleResident,
			wantErr: false,
		},
		{
			name: "SuccessManagerEstate",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testDeviceID).
					Return(estateDevice, nil)
				mockRepo.EXPECT().
					ListDeviceLogs(gomock.Any(), testDeviceID).
					Return(testLogs, nil)
			},
			role:    models.RoleManager,
			wantErr: false,
		},
		{
			name: "ForbiddenForeignDevice",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testDeviceID).
					Return(foreignDevice, nil)
			},
			role:    models.RoleResident,
			wantErr: true,
			err:     ErrForbidden,
		},
		{
			name: "NotFound",
			setup: func() {
				mockRepo.EXPECT().
					GetDeviceByID(gomock.Any(), testDeviceID).
					Return(nil, repo.ErrNotFound)
			},
			role:    models.RoleResident,
			wantErr: true,
			err:     ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := ctrl.GetDeviceLogs(ctx, testUserID, tt.role, testDeviceID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testLogs, result)
			}
		})
	}
}
