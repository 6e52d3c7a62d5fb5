package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
	defaultStoreName  = "Storefront"
)

// notificationService implements the NotificationUsecase interface.
// Unconfigured channels are nil and skipped.
type notificationService struct {
	orderRepo  repository.OrderRepository
	deviceRepo repository.DeviceRepository
	push       service.NotificationService
	email      service.EmailSender
	sms        service.SMSSender
	storeName  string
	logger     *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	OrderRepo  repository.OrderRepository
	DeviceRepo repository.DeviceRepository
	Push       service.NotificationService `optional:"true"`
	Email      service.EmailSender         `optional:"true"`
	SMS        service.SMSSender           `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	storeName := params.Config.Store.Name
	if storeName == "" {
		storeName = defaultStoreName
	}

	return &notificationService{
		orderRepo:  params.OrderRepo,
		deviceRepo: params.DeviceRepo,
		push:       params.Push,
		email:      params.Email,
		sms:        params.SMS,
		storeName:  storeName,
		logger:     params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleOrderEvent sends every channel for an event; a failing channel does not stop the others.
func (s *notificationService) HandleOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	if event == nil {
		return domainerrors.ErrValidationFailed.WithDetails("empty order event")
	}

	order, err := s.orderRepo.FindOrderByID(ctx, event.OrderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load order for notification")
	}

	logger := s.log(ctx).With(
		slog.String("eventID", event.EventID.String()),
		slog.String("eventType", string(event.Type)),
		slog.String("orderNumber", order.OrderNumber),
	)

	msg := buildOrderMessages(s.storeName, event.Type, order)
	if msg == nil {
		logger.Debug("No notifications for event type")

		return nil
	}

	// Channels never return errors to the group so one failure cannot cancel the rest
	var g errgroup.Group

	if msg.email != nil {
		g.Go(func() error {
			s.sendEmail(ctx, logger, msg.email)

			return nil
		})
	}
	if msg.sms != "" {
		g.Go(func() error {
			s.sendSMS(ctx, logger, order.Contact.Phone, msg.sms)

			return nil
		})
	}
	if msg.pushTitle != "" && order.CustomerID != nil {
		g.Go(func() error {
			s.sendPush(ctx, logger, order, msg)

			return nil
		})
	}

	_ = g.Wait()

	return nil
}

func (s *notificationService) sendEmail(ctx context.Context, logger *slog.Logger, email *service.EmailMessage) {
	if s.email == nil {
		logger.Warn("Email channel not configured, skipping")

		return
	}
	if strings.TrimSpace(email.To) == "" {
		logger.Warn("Order has no contact email, skipping")

		return
	}

	if err := s.email.SendEmail(ctx, email); err != nil {
		logger.Error("Failed to send order email", slog.Any("error", err))

		return
	}
	logger.Info("Order email sent")
}

func (s *notificationService) sendSMS(ctx context.Context, logger *slog.Logger, phone, text string) {
	if s.sms == nil {
		logger.Warn("SMS channel not configured, skipping")

		return
	}
	phone = util.NormalizeGhanaPhone(phone)
	if phone == "" {
		logger.Warn("Order has no contact phone, skipping")

		return
	}

	if err := s.sms.SendSMS(ctx, phone, text); err != nil {
		logger.Error("Failed to send order SMS", slog.Any("error", err))

		return
	}
	logger.Info("Order SMS sent")
}

func (s *notificationService) sendPush(ctx context.Context, logger *slog.Logger, order *entity.Order, msg *orderMessages) {
	if s.push == nil {
		logger.Warn("Push channel not configured, skipping")

		return
	}

	devices, err := s.deviceRepo.FindActiveDevicesByCustomer(ctx, *order.CustomerID)
	if err != nil {
		logger.Error("Failed to load customer devices", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"status":       order.Status.String(),
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		batch := tokens[i:min(i+firebaseBatchSize, len(tokens))]

		sent, failed, invalid, err := s.push.SendBatchNotification(ctx, batch, msg.pushTitle, msg.pushBody, data)
		if err != nil {
			logger.Error("Failed to send push batch", slog.Int("batchSize", len(batch)), slog.Any("error", err))
			totalFailed += len(batch)

			continue
		}
		totalSent += sent
		totalFailed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateDevicesByTokens(ctx, invalidTokens); err != nil {
			logger.Error("Failed to deactivate invalid device tokens", slog.Any("error", err))
		}
	}

	logger.Info("Order push sent",
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
		slog.Int("invalidTokens", len(invalidTokens)),
	)
}
