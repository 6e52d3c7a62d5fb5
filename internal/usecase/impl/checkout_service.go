package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
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

const maxOrderNumberAttempts = 3

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	variantRepo repository.VariantRepository
	stockRepo   repository.StockRepository
	ruleRepo    repository.DeliveryRuleRepository
	orderRepo   repository.OrderRepository
	cache       service.CartCache
	starter     *paymentStarter
	currency    string
	fallbackFee decimal.Decimal
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	VariantRepo repository.VariantRepository
	StockRepo   repository.StockRepository
	RuleRepo    repository.DeliveryRuleRepository
	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	Gateway     service.PaymentGateway
	Cache       service.CartCache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		variantRepo: params.VariantRepo,
		stockRepo:   params.StockRepo,
		ruleRepo:    params.RuleRepo,
		orderRepo:   params.OrderRepo,
		cache:       params.Cache,
		starter: &paymentStarter{
			gateway:     params.Gateway,
			paymentRepo: params.PaymentRepo,
			appURL:      params.Config.Payments.AppURL,
		},
		currency:    params.Config.Payments.Currency,
		fallbackFee: params.Config.Delivery.FallbackFee,
		logger:      params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout places an order from the identity's cart and starts its payment.
//
// Availability is checked first without reserving. The order and its pending payment are then written
// in one transaction, after which each item is reserved with a conditional update. A reservation lost
// to a concurrent checkout releases the reservations already taken and cancels the order.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	if err := validateCheckoutInput(input); err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindCartByIdentity(ctx, input.Identity)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartEmpty
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}
	if cart.IsEmpty() || cart.IsExpired(time.Now()) {
		return nil, domainerrors.ErrCartEmpty
	}

	variants, stock, err := srv.checkAvailability(ctx, cart)
	if err != nil {
		return nil, err
	}

	order, err := srv.buildOrder(ctx, input, cart, variants)
	if err != nil {
		return nil, err
	}

	payment, err := srv.persistOrder(ctx, input, order)
	if err != nil {
		return nil, err
	}

	if err := srv.reserveItems(ctx, order, stock); err != nil {
		return nil, err
	}

	srv.clearCart(ctx, input.Identity, cart.ID)

	srv.log(ctx).Info("Order placed", append(orderLogAttrs(order),
		slog.String("total", order.Total.StringFixed(2)),
		slog.String("paymentMethod", string(order.PaymentMethod)),
	)...)

	outcome := srv.starter.start(ctx, srv.log(ctx), order, payment, input.PayerPhone)

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

func validateCheckoutInput(input *usecase.CheckoutInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed
	}
	if !input.Identity.IsValid() {
		return domainerrors.ErrIdentityRequired
	}

	var missing []string
	if strings.TrimSpace(input.Contact.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Contact.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(input.Contact.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(input.Shipping.Region) == "" {
		missing = append(missing, "region")
	}
	if strings.TrimSpace(input.Shipping.City) == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing fields: " + strings.Join(missing, ", "))
	}

	switch input.PaymentMethod {
	case entity.PaymentMethodMTN, entity.PaymentMethodVodafone, entity.PaymentMethodAirtelTigo,
		entity.PaymentMethodCard, entity.PaymentMethodBankTransfer:
		return nil
	default:
		return domainerrors.ErrUnsupportedPaymentMethod
	}
}

// checkAvailability reads stock without reserving and rejects the whole checkout on the first short line.
func (srv *checkoutService) checkAvailability(
	ctx context.Context,
	cart *entity.Cart,
) (map[uuid.UUID]*entity.Variant, map[uuid.UUID][]*entity.StockRecord, error) {
	variantList, err := srv.variantRepo.FindVariantsByIDs(ctx, cart.VariantIDs())
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load cart variants")
	}
	variants := make(map[uuid.UUID]*entity.Variant, len(variantList))
	for _, v := range variantList {
		variants[v.ID] = v
	}

	records, err := srv.stockRepo.FindByVariants(ctx, cart.VariantIDs())
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read stock")
	}
	stock := make(map[uuid.UUID][]*entity.StockRecord)
	for _, rec := range records {
		stock[rec.VariantID] = append(stock[rec.VariantID], rec)
	}

	for _, line := range cart.Lines {
		variant, ok := variants[line.VariantID]
		if !ok {
			return nil, nil, domainerrors.ErrVariantNotFound.WithDetails(line.VariantID.String())
		}
		if !variant.IsActive {
			return nil, nil, domainerrors.ErrVariantUnavailable.WithDetails(variant.DisplayName())
		}
		if entity.TotalAvailable(stock[line.VariantID]) < line.Quantity {
			return nil, nil, domainerrors.ErrInsufficientStock.WithDetails(variant.DisplayName())
		}
	}

	return variants, stock, nil
}

// buildOrder snapshots prices and names as they are now.
func (srv *checkoutService) buildOrder(
	ctx context.Context,
	input *usecase.CheckoutInput,
	cart *entity.Cart,
	variants map[uuid.UUID]*entity.Variant,
) (*entity.Order, error) {
	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New(),
		CustomerID:    input.Identity.CustomerID,
		Contact:       input.Contact,
		Shipping:      input.Shipping,
		Subtotal:      decimal.Zero,
		Discount:      decimal.Zero,
		Tax:           decimal.Zero,
		Currency:      srv.currency,
		Status:        entity.OrderStatusPendingPayment,
		PaymentMethod: input.PaymentMethod,
		Notes:         strings.TrimSpace(input.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if !input.Identity.IsCustomer() {
		token := input.Identity.SessionToken
		order.SessionToken = &token
	}

	for _, line := range cart.Lines {
		variant := variants[line.VariantID]
		lineTotal := variant.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		order.Items = append(order.Items, entity.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			VariantID:   variant.ID,
			ProductName: variant.DisplayName(),
			SKU:         variant.SKU,
			ImageURL:    variant.ImageURL,
			UnitPrice:   variant.Price,
			Quantity:    line.Quantity,
			LineTotal:   lineTotal,
		})
		order.Subtotal = order.Subtotal.Add(lineTotal)
	}

	quote, err := quoteDelivery(ctx, srv.ruleRepo, input.Shipping.Region, order.Subtotal, srv.fallbackFee, srv.log(ctx))
	if err != nil {
		return nil, err
	}
	order.DeliveryFee = quote.Fee
	order.Total = order.Subtotal.Add(order.DeliveryFee).Sub(order.Discount).Add(order.Tax)

	return order, nil
}

// persistOrder writes order, items, pending payment, first history entry and audit row atomically.
// Order numbers are random; a collision regenerates the number and retries the transaction.
func (srv *checkoutService) persistOrder(ctx context.Context, input *usecase.CheckoutInput, order *entity.Order) (*entity.Payment, error) {
	var payment *entity.Payment

	for attempt := 1; ; attempt++ {
		now := time.Now()
		order.OrderNumber = util.GenerateOrderNumber(now)
		payment = &entity.Payment{
			ID:             uuid.New(),
			OrderID:        order.ID,
			Provider:       srv.starter.providerName(order.PaymentMethod),
			Method:         order.PaymentMethod,
			Status:         entity.PaymentStatusPending,
			Amount:         order.Total,
			Currency:       order.Currency,
			Reference:      util.GeneratePaymentReference(order.OrderNumber, now),
			IdempotencyKey: uuid.NewString(),
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.OrderRepo().CreateOrder(ctx, order); err != nil {
				return err
			}
			if err := repoFactory.PaymentRepo().CreatePayment(ctx, payment); err != nil {
				return errors.Wrap(err, "failed to create payment")
			}
			history := entity.NewStatusHistory(order.ID, entity.OrderStatusPendingPayment, historyNoteOrderCreated, nil, now)
			if err := repoFactory.OrderRepo().AppendHistory(ctx, history); err != nil {
				return errors.Wrap(err, "failed to append order history")
			}

			if input.Identity.IsCustomer() {
				return repoFactory.AuditRepo().CreateAuditLog(ctx, &entity.AuditLog{
					ID:         uuid.New(),
					ActorID:    input.Identity.CustomerID,
					Action:     entity.AuditActionOrderCreated,
					EntityType: "order",
					EntityID:   order.ID,
					NewValue: map[string]any{
						"order_number": order.OrderNumber,
						"total":        order.Total.StringFixed(2),
						"status":       string(order.Status),
					},
					IPAddress: input.Meta.IPAddress,
					UserAgent: input.Meta.UserAgent,
					CreatedAt: now,
				})
			}

			return nil
		})
		if err == nil {
			return payment, nil
		}
		if errors.Is(err, repository.ErrDuplicateOrderNumber) && attempt < maxOrderNumberAttempts {
			srv.log(ctx).Warn("Order number collision, regenerating", slog.String("orderNumber", order.OrderNumber))

			continue
		}

		return nil, errors.Wrap(err, "failed to create order")
	}
}

// reserveItems reserves each item's quantity, splitting it across locations when no single one holds it all.
func (srv *checkoutService) reserveItems(ctx context.Context, order *entity.Order, stock map[uuid.UUID][]*entity.StockRecord) error {
	reserved := make([]int, 0, len(order.Items))

	for i := range order.Items {
		item := &order.Items[i]

		allocations, ok, err := srv.reserveItem(ctx, item, stock[item.VariantID])
		if err != nil {
			srv.abortCheckout(ctx, order, reserved, failureReasonOutOfStock)

			return err
		}
		if !ok {
			srv.log(ctx).Warn("Reservation lost to a concurrent checkout",
				slog.String("orderNumber", order.OrderNumber),
				slog.String("variantID", item.VariantID.String()),
				slog.Int("quantity", item.Quantity),
			)
			srv.abortCheckout(ctx, order, reserved, failureReasonOutOfStock)

			return domainerrors.ErrInsufficientStock.WithDetails(item.ProductName)
		}

		item.Allocations = allocations
		reserved = append(reserved, i)

		if err := srv.orderRepo.SetItemAllocations(ctx, item.ID, allocations); err != nil {
			srv.abortCheckout(ctx, order, reserved, failureReasonOutOfStock)

			return errors.Wrap(err, "failed to record reservation locations")
		}
	}

	return nil
}

// reserveItem takes as much as each location showed available, largest first, until the line is covered.
// A location that lost units since the read is skipped; if the line cannot be covered every partial hold is
// given back and ok is false.
func (srv *checkoutService) reserveItem(
	ctx context.Context,
	item *entity.OrderItem,
	records []*entity.StockRecord,
) ([]entity.StockAllocation, bool, error) {
	candidates := append([]*entity.StockRecord(nil), records...)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Available() > candidates[j].Available()
	})

	var allocations []entity.StockAllocation
	remaining := item.Quantity
	for _, rec := range candidates {
		if remaining == 0 {
			break
		}
		take := min(remaining, rec.Available())
		if take <= 0 {
			continue
		}

		ok, err := srv.stockRepo.TryReserve(ctx, item.VariantID, rec.LocationID, take)
		if err != nil {
			srv.releaseAllocations(ctx, item.VariantID, allocations)

			return nil, false, errors.Wrap(err, "failed to reserve stock")
		}
		if !ok {
			continue
		}
		allocations = append(allocations, entity.StockAllocation{LocationID: rec.LocationID, Quantity: take})
		remaining -= take
	}

	if remaining > 0 {
		srv.releaseAllocations(ctx, item.VariantID, allocations)

		return nil, false, nil
	}

	return allocations, true, nil
}

// releaseAllocations gives back holds taken by a checkout that is being unwound.
// Errors are logged: the caller already reports the original failure.
func (srv *checkoutService) releaseAllocations(ctx context.Context, variantID uuid.UUID, allocations []entity.StockAllocation) {
	for _, alloc := range allocations {
		if err := srv.stockRepo.Release(ctx, variantID, alloc.LocationID, alloc.Quantity); err != nil {
			srv.log(ctx).Error("Failed to release reservation after aborted checkout",
				slog.String("variantID", variantID.String()),
				slog.String("locationID", alloc.LocationID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// abortCheckout releases the reservations taken so far, then fails the payment and cancels the order.
// Errors are logged: the caller already reports the original failure.
func (srv *checkoutService) abortCheckout(ctx context.Context, order *entity.Order, reservedIdx []int, reason string) {
	logger := srv.log(ctx)

	for _, idx := range reservedIdx {
		item := &order.Items[idx]
		srv.releaseAllocations(ctx, item.VariantID, item.Allocations)
		item.Allocations = nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		payment, err := repoFactory.PaymentRepo().FindPendingPaymentByOrder(ctx, order.ID)
		if err != nil && !errors.Is(err, repository.ErrPaymentNotFound) {
			return errors.Wrap(err, "failed to find pending payment")
		}
		if payment != nil {
			if err := repoFactory.PaymentRepo().MarkPaymentFailed(ctx, payment.ID, reason); err != nil {
				return errors.Wrap(err, "failed to mark payment failed")
			}
		}

		return transitionOrder(ctx, repoFactory.OrderRepo(), order, entity.OrderStatusCancelled, historyNoteCheckoutFailed, nil, time.Now())
	})
	if err != nil {
		logger.Error("Failed to cancel aborted checkout", append(orderLogAttrs(order), slog.Any("error", err))...)
	}
}

func (srv *checkoutService) clearCart(ctx context.Context, identity entity.Identity, cartID uuid.UUID) {
	if err := srv.cartRepo.ClearLines(ctx, cartID); err != nil {
		srv.log(ctx).Error("Failed to clear cart after checkout",
			slog.String("cartID", cartID.String()),
			slog.Any("error", err),
		)
	}

	if err := srv.cache.InvalidateCart(ctx, identity); err != nil {
		srv.log(ctx).Warn("Cart cache invalidation failed", slog.Any("error", err))
	}
}
