package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const historyNotePaymentConfirmed = "Payment confirmed"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
	qrService   service.QRCodeService
	starter     *paymentStarter
	store       config.StoreConfig
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	Gateway     service.PaymentGateway
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		qrService:   params.QRService,
		starter: &paymentStarter{
			gateway:     params.Gateway,
			paymentRepo: params.PaymentRepo,
			appURL:      params.Config.Payments.AppURL,
		},
		store:  params.Config.Store,
		logger: params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignatureHeaders lists request headers that may carry the webhook signature.
func (srv *paymentService) SignatureHeaders() []string {
	return srv.gateway.SignatureHeaders()
}

// HandleWebhook verifies, parses and applies a provider callback.
// The signature is checked against the raw body before anything is parsed.
func (srv *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*usecase.ReconcileResult, error) {
	if !srv.gateway.VerifyWebhookSignature(payload, signature) {
		srv.log(ctx).Warn("Rejected webhook with invalid signature", slog.String("provider", srv.gateway.Name()))

		return nil, domainerrors.ErrInvalidSignature
	}

	data, err := srv.gateway.ParseWebhookData(payload)
	if err != nil {
		srv.log(ctx).Warn("Failed to parse webhook payload", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidWebhookPayload
	}
	if data.Reference == "" {
		return nil, domainerrors.ErrInvalidWebhookPayload.WithDetails("missing reference")
	}

	srv.log(ctx).Info("Payment webhook received",
		slog.String("reference", data.Reference),
		slog.String("status", data.RawStatus),
	)

	return srv.reconcile(ctx, &reconcileInput{
		reference:         data.Reference,
		status:            data.Status,
		rawStatus:         data.RawStatus,
		amount:            data.Amount,
		providerReference: data.ProviderReference,
	})
}

// VerifyPayment asks the provider for the payment state and applies a terminal answer.
func (srv *paymentService) VerifyPayment(ctx context.Context, reference string, viewer usecase.Viewer) (*usecase.ReconcileResult, error) {
	payment, err := srv.paymentRepo.FindPaymentByReference(ctx, reference)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, domainerrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}

	order, err := loadViewableOrder(ctx, srv.orderRepo, payment.OrderID, viewer)
	if err != nil {
		return nil, err
	}

	current := &usecase.ReconcileResult{
		Outcome:       usecase.WebhookOutcomeIgnored,
		Reference:     payment.Reference,
		OrderID:       order.ID,
		PaymentStatus: payment.Status,
		OrderStatus:   order.Status,
	}
	if payment.IsSettled() {
		current.Outcome = usecase.WebhookOutcomeAlreadyProcessed

		return current, nil
	}
	if payment.Method.IsManual() {
		return current, nil
	}

	verification, err := srv.gateway.VerifyPayment(ctx, payment.Reference)
	if err != nil {
		srv.log(ctx).Error("Payment verification failed",
			slog.String("reference", payment.Reference),
			slog.String("provider", srv.gateway.Name()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentVerifyFailed
	}

	if verification.Status != entity.ProviderStatusSuccess && !verification.Status.IsFailure() {
		return current, nil
	}

	return srv.reconcile(ctx, &reconcileInput{
		reference:         payment.Reference,
		status:            verification.Status,
		rawStatus:         string(verification.Status),
		amount:            verification.Amount,
		providerReference: verification.ProviderReference,
	})
}

type reconcileInput struct {
	reference         string
	status            entity.ProviderStatus
	rawStatus         string
	amount            decimal.Decimal
	providerReference string
}

// reconcile applies a provider status to a payment and its order in one transaction.
//
// A payment already SUCCESS returns without side effects, so replays never commit stock twice. Concurrent
// deliveries race on the conditional payment update; the loser sees ErrPaymentAlreadySettled and reports
// the delivery as already processed.
func (srv *paymentService) reconcile(ctx context.Context, in *reconcileInput) (*usecase.ReconcileResult, error) {
	logger := srv.log(ctx).With(slog.String("reference", in.reference))
	result := &usecase.ReconcileResult{Reference: in.reference}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()

		payment, err := paymentRepo.FindPaymentByReference(ctx, in.reference)
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrPaymentNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find payment")
		}
		result.OrderID = payment.OrderID
		result.PaymentStatus = payment.Status

		switch payment.Status {
		case entity.PaymentStatusSuccess:
			result.Outcome = usecase.WebhookOutcomeAlreadyProcessed

			return srv.fillOrderStatus(ctx, repoFactory, result)
		case entity.PaymentStatusFailed:
			logger.Warn("Callback for a failed payment ignored", slog.String("status", in.rawStatus))
			result.Outcome = usecase.WebhookOutcomeIgnored

			return srv.fillOrderStatus(ctx, repoFactory, result)
		}

		order, err := repoFactory.OrderRepo().FindOrderByID(ctx, payment.OrderID)
		if err != nil {
			return errors.Wrap(err, "failed to find order for payment")
		}
		result.OrderStatus = order.Status

		switch {
		case in.status == entity.ProviderStatusSuccess:
			return srv.applySuccess(ctx, repoFactory, logger, in, payment, order, result)
		case in.status.IsFailure():
			return srv.applyFailure(ctx, repoFactory, logger, in, payment, order, result)
		default:
			logger.Warn("Unrecognized payment status left for manual review", slog.String("status", in.rawStatus))
			result.Outcome = usecase.WebhookOutcomeIgnored

			return nil
		}
	})
	if errors.Is(err, repository.ErrPaymentAlreadySettled) {
		logger.Info("Payment settled by a concurrent callback")
		result.Outcome = usecase.WebhookOutcomeAlreadyProcessed

		return result, nil
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (srv *paymentService) applySuccess(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	logger *slog.Logger,
	in *reconcileInput,
	payment *entity.Payment,
	order *entity.Order,
	result *usecase.ReconcileResult,
) error {
	if !in.amount.IsZero() && !in.amount.Equal(payment.Amount) {
		logger.Warn("Payment amount mismatch left for manual review",
			slog.String("expected", payment.Amount.StringFixed(2)),
			slog.String("reported", in.amount.StringFixed(2)),
		)
		result.Outcome = usecase.WebhookOutcomeIgnored

		return nil
	}

	now := time.Now()
	paymentRepo := repoFactory.PaymentRepo()

	if order.Status != entity.OrderStatusPendingPayment {
		logger.Error("Payment succeeded for an order that no longer awaits payment",
			append(orderLogAttrs(order), slog.String("paymentID", payment.ID.String()))...,
		)
		if err := paymentRepo.MarkPaymentFailed(ctx, payment.ID, failureReasonRefundRequired); err != nil {
			return errors.Wrap(err, "failed to flag payment for refund")
		}
		result.Outcome = usecase.WebhookOutcomeProcessed
		result.PaymentStatus = entity.PaymentStatusFailed

		return nil
	}

	var providerRef *string
	if in.providerReference != "" {
		providerRef = &in.providerReference
	}
	if err := paymentRepo.MarkPaymentSucceeded(ctx, payment.ID, providerRef, now); err != nil {
		return err
	}

	note := historyNotePaymentConfirmed
	if payment.Provider != "" {
		note += " via " + payment.Provider
	}
	if err := transitionOrder(ctx, repoFactory.OrderRepo(), order, entity.OrderStatusPaid, note, nil, now); err != nil {
		return err
	}
	if err := commitItems(ctx, repoFactory.StockRepo(), order); err != nil {
		return err
	}
	if err := enqueueOrderEvent(ctx, repoFactory.OutboxRepo(), order, entity.OrderEventPaid, now); err != nil {
		return err
	}

	logger.Info("Payment reconciled", orderLogAttrs(order)...)
	result.Outcome = usecase.WebhookOutcomeProcessed
	result.PaymentStatus = entity.PaymentStatusSuccess
	result.OrderStatus = order.Status

	return nil
}

func (srv *paymentService) applyFailure(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	logger *slog.Logger,
	in *reconcileInput,
	payment *entity.Payment,
	order *entity.Order,
	result *usecase.ReconcileResult,
) error {
	now := time.Now()
	paymentRepo := repoFactory.PaymentRepo()

	if err := paymentRepo.MarkPaymentFailed(ctx, payment.ID, "provider reported "+in.rawStatus); err != nil {
		return err
	}
	result.Outcome = usecase.WebhookOutcomeProcessed
	result.PaymentStatus = entity.PaymentStatusFailed

	if order.Status != entity.OrderStatusPendingPayment {
		return nil
	}

	// A retried attempt may still succeed; the order stays open while one is pending.
	other, err := paymentRepo.FindPendingPaymentByOrder(ctx, order.ID)
	if err != nil && !errors.Is(err, repository.ErrPaymentNotFound) {
		return errors.Wrap(err, "failed to check pending payments")
	}
	if other != nil {
		logger.Info("Payment attempt failed, another attempt still pending", orderLogAttrs(order)...)

		return nil
	}

	if err := transitionOrder(ctx, repoFactory.OrderRepo(), order, entity.OrderStatusCancelled, historyNotePaymentFailed, nil, now); err != nil {
		return err
	}
	if err := releaseItems(ctx, repoFactory.StockRepo(), order); err != nil {
		return err
	}
	if err := enqueueOrderEvent(ctx, repoFactory.OutboxRepo(), order, entity.OrderEventPaymentFailed, now); err != nil {
		return err
	}

	logger.Info("Payment failed, order cancelled", orderLogAttrs(order)...)
	result.OrderStatus = order.Status

	return nil
}

func (srv *paymentService) fillOrderStatus(ctx context.Context, repoFactory repository.RepositoryFactory, result *usecase.ReconcileResult) error {
	order, err := repoFactory.OrderRepo().FindOrderByID(ctx, result.OrderID)
	if err != nil {
		return errors.Wrap(err, "failed to find order for payment")
	}
	result.OrderStatus = order.Status

	return nil
}

// RetryPayment starts a new payment attempt for an order still awaiting payment.
// Earlier attempts stay PENDING so a late success on any of them still pays the order.
func (srv *paymentService) RetryPayment(
	ctx context.Context,
	orderID uuid.UUID,
	viewer usecase.Viewer,
	payerPhone string,
) (*usecase.CheckoutResult, error) {
	order, err := loadViewableOrder(ctx, srv.orderRepo, orderID, viewer)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusPendingPayment {
		return nil, domainerrors.ErrOrderNotPayable
	}

	now := time.Now()
	payment := &entity.Payment{
		OrderID:  order.ID,
		Provider: srv.starter.providerName(order.PaymentMethod),
		Method:   order.PaymentMethod,
		Status:   entity.PaymentStatusPending,
		Amount:   order.Total,
		Currency: order.Currency,
	}
	for attempt := 1; ; attempt++ {
		payment.ID = uuid.New()
		payment.Reference = util.GeneratePaymentReference(order.OrderNumber, now)
		payment.IdempotencyKey = uuid.NewString()
		payment.CreatedAt, payment.UpdatedAt = now, now

		err = srv.paymentRepo.CreatePayment(ctx, payment)
		if err == nil {
			break
		}
		// references are millisecond based; a retry in the same millisecond as the last attempt collides
		if errors.Is(err, repository.ErrDuplicatePaymentReference) && attempt < maxOrderNumberAttempts {
			now = now.Add(time.Millisecond)

			continue
		}

		return nil, errors.Wrap(err, "failed to create payment attempt")
	}

	srv.log(ctx).Info("Payment retry started", append(orderLogAttrs(order), slog.String("reference", payment.Reference))...)

	outcome := srv.starter.start(ctx, srv.log(ctx), order, payment, payerPhone)

	return &usecase.CheckoutResult{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		Subtotal:      order.Subtotal,
		DeliveryFee:   order.DeliveryFee,
		Total:         order.Total,
		Currency:      order.Currency,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod.Selector(),
		Reference:     outcome.Reference,
		CheckoutURL:   outcome.CheckoutURL,
		PaymentError:  outcome.PaymentError,
	}, nil
}

// BankTransferQR renders the bank-transfer instructions of an order as a PNG QR code.
func (srv *paymentService) BankTransferQR(ctx context.Context, orderID uuid.UUID, viewer usecase.Viewer) ([]byte, error) {
	order, err := loadViewableOrder(ctx, srv.orderRepo, orderID, viewer)
	if err != nil {
		return nil, err
	}
	if !order.PaymentMethod.IsManual() {
		return nil, domainerrors.ErrUnsupportedPaymentMethod.WithDetails("order is not paid by bank transfer")
	}
	if order.Status != entity.OrderStatusPendingPayment {
		return nil, domainerrors.ErrOrderNotPayable
	}

	payment, err := srv.paymentRepo.FindPendingPaymentByOrder(ctx, order.ID)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, domainerrors.ErrOrderNotPayable
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending payment")
	}

	instructions := service.NewBankTransferInstructions(srv.store.BankName, srv.store.AccountName, srv.store.AccountNumber, order, payment)

	png, err := srv.qrService.GenerateBankTransferQR(instructions)
	if err != nil {
		srv.log(ctx).Error("Failed to generate bank transfer QR", append(orderLogAttrs(order), slog.Any("error", err))...)

		return nil, domainerrors.ErrQRCodeGenerationFailed
	}

	return png, nil
}
