package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	customerID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByCustomer(ctx, customerID).
		Return([]*entity.CustomerDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.CustomerDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, customerID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, customerID, device.CustomerID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	customerID := uuid.New()
	deviceID := uuid.New()
	existing := &entity.CustomerDevice{ID: deviceID, CustomerID: customerID, FCMToken: "old-token", DeviceID: "device-123", Platform: "ios", IsActive: true}
	refreshed := &entity.CustomerDevice{ID: deviceID, CustomerID: customerID, FCMToken: "new-token", DeviceID: "device-123", Platform: "ios", IsActive: true}

	fx.deviceRepo.EXPECT().FindDevicesByCustomer(ctx, customerID).Return([]*entity.CustomerDevice{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-token").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, customerID, &usecase.DeviceInfo{
		FCMToken: "new-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_EmptyToken(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{DeviceID: "d", Platform: "web"})
	assert.ErrorIs(t, err, ErrInvalidFCMToken)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	dbErr := errors.New("database error")

	tests := []struct {
		name      string
		setup     func(fx deviceServiceFixtures, customerID uuid.UUID)
		errSubstr string
	}{
		{
			name: "find devices fails",
			setup: func(fx deviceServiceFixtures, customerID uuid.UUID) {
				fx.deviceRepo.EXPECT().FindDevicesByCustomer(mock.Anything, customerID).Return(nil, dbErr)
			},
			errSubstr: "failed to find devices by customer",
		},
		{
			name: "create fails",
			setup: func(fx deviceServiceFixtures, customerID uuid.UUID) {
				fx.deviceRepo.EXPECT().FindDevicesByCustomer(mock.Anything, customerID).Return(nil, nil)
				fx.deviceRepo.EXPECT().CreateDevice(mock.Anything, mock.Anything).Return(dbErr)
			},
			errSubstr: "failed to create device",
		},
		{
			name: "token refresh fails",
			setup: func(fx deviceServiceFixtures, customerID uuid.UUID) {
				existing := &entity.CustomerDevice{ID: uuid.New(), CustomerID: customerID, DeviceID: "device-123"}
				fx.deviceRepo.EXPECT().FindDevicesByCustomer(mock.Anything, customerID).Return([]*entity.CustomerDevice{existing}, nil)
				fx.deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, existing.ID, "token").Return(dbErr)
			},
			errSubstr: "failed to update FCM token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			customerID := uuid.New()
			tt.setup(fx, customerID)

			_, err := fx.service.RegisterDevice(context.Background(), customerID, &usecase.DeviceInfo{
				FCMToken: "token",
				DeviceID: "device-123",
				Platform: "ios",
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, dbErr)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	customerID := uuid.New()
	deviceID := uuid.New()
	dbErr := errors.New("database error")

	tests := []struct {
		name    string
		setup   func(fx deviceServiceFixtures)
		wantErr error
	}{
		{
			name: "success",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.CustomerDevice{ID: deviceID, CustomerID: customerID}, nil)
				fx.deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, deviceID, "fresh").Return(nil)
			},
		},
		{
			name: "device missing",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: ErrDeviceNotFound,
		},
		{
			name: "owned by someone else",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.CustomerDevice{ID: deviceID, CustomerID: uuid.New()}, nil)
			},
			wantErr: ErrDeviceUnauthorized,
		},
		{
			name: "update fails",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.CustomerDevice{ID: deviceID, CustomerID: customerID}, nil)
				fx.deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, deviceID, "fresh").Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx)

			err := fx.service.UpdateFCMToken(context.Background(), customerID, deviceID, "fresh")
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceService_GetCustomerDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	customerID := uuid.New()
	devices := []*entity.CustomerDevice{
		{ID: uuid.New(), CustomerID: customerID, Platform: "ios", IsActive: true},
		{ID: uuid.New(), CustomerID: customerID, Platform: "web", IsActive: true},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByCustomer(ctx, customerID).Return(devices, nil)

	result, err := fx.service.GetCustomerDevices(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeviceService_GetCustomerDevices_Error(t *testing.T) {
	fx := createTestDeviceService(t)

	fx.deviceRepo.EXPECT().FindActiveDevicesByCustomer(mock.Anything, mock.Anything).Return(nil, errors.New("database error"))

	_, err := fx.service.GetCustomerDevices(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find active devices by customer")
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	customerID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.CustomerDevice{ID: deviceID, CustomerID: customerID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(context.Background(), customerID, deviceID))
	})

	t.Run("unauthorized", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.CustomerDevice{ID: deviceID, CustomerID: uuid.New()}, nil)

		err := fx.service.DeactivateDevice(context.Background(), customerID, deviceID)
		assert.ErrorIs(t, err, ErrDeviceUnauthorized)
	})

	t.Run("delete fails", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.CustomerDevice{ID: deviceID, CustomerID: customerID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID).Return(errors.New("database error"))

		err := fx.service.DeactivateDevice(context.Background(), customerID, deviceID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete device")
	})
}
