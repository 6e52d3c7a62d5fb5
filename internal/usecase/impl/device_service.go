package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when a device is not found
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceUnauthorized is returned when a customer tries to access a device they don't own
	ErrDeviceUnauthorized = errors.New("unauthorized to access this device")
	// ErrInvalidFCMToken is returned when an empty token is submitted
	ErrInvalidFCMToken = errors.New("fcm token is required")
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, customerID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.CustomerDevice, error) {
	if deviceInfo == nil || strings.TrimSpace(deviceInfo.FCMToken) == "" {
		return nil, ErrInvalidFCMToken
	}

	devices, err := s.deviceRepo.FindDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by customer: %w", err)
	}

	// The client keeps its device_id across reinstalls; reuse the row and swap the token
	for _, device := range devices {
		if device.DeviceID == deviceInfo.DeviceID {
			if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
				return nil, fmt.Errorf("failed to update FCM token: %w", err)
			}
			updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to find device by ID: %w", err)
			}

			return updatedDevice, nil
		}
	}

	now := time.Now()
	device := &entity.CustomerDevice{
		ID:         uuid.New(),
		CustomerID: customerID,
		FCMToken:   deviceInfo.FCMToken,
		DeviceID:   deviceInfo.DeviceID,
		Platform:   deviceInfo.Platform,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, customerID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return ErrInvalidFCMToken
	}

	if _, err := s.ownedDevice(ctx, customerID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}

	return nil
}

// GetCustomerDevices retrieves all active devices for a customer
func (s *deviceService) GetCustomerDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active devices by customer: %w", err)
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, customerID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, customerID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, customerID, deviceID uuid.UUID) (*entity.CustomerDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device by ID: %w", err)
	}

	if device.CustomerID != customerID {
		return nil, ErrDeviceUnauthorized
	}

	return device, nil
}
