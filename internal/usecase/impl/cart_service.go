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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	variantRepo repository.VariantRepository
	stockRepo   repository.StockRepository
	ruleRepo    repository.DeliveryRuleRepository
	cache       service.CartCache
	cartTTL     time.Duration
	fallbackFee decimal.Decimal
	logger      *slog.Logger
	reads       singleflight.Group
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	VariantRepo repository.VariantRepository
	StockRepo   repository.StockRepository
	RuleRepo    repository.DeliveryRuleRepository
	Cache       service.CartCache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		variantRepo: params.VariantRepo,
		stockRepo:   params.StockRepo,
		ruleRepo:    params.RuleRepo,
		cache:       params.Cache,
		cartTTL:     params.Config.Cart.TTL,
		fallbackFee: params.Config.Delivery.FallbackFee,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the identity's cart; an identity without a cart gets an empty view.
func (srv *cartService) GetCart(ctx context.Context, identity entity.Identity) (*usecase.CartView, error) {
	if !identity.IsValid() {
		return nil, domainerrors.ErrIdentityRequired
	}

	cart, err := srv.loadCart(ctx, identity)
	if err != nil {
		return nil, err
	}

	return srv.buildView(ctx, cart)
}

// AddItem adds qty units of a variant, incrementing an existing line.
func (srv *cartService) AddItem(ctx context.Context, identity entity.Identity, variantID uuid.UUID, qty int) (*usecase.CartView, error) {
	if !identity.IsValid() {
		return nil, domainerrors.ErrIdentityRequired
	}
	if qty < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	variant, err := srv.findPurchasableVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}

	cart, err := srv.getOrCreateCart(ctx, identity)
	if err != nil {
		return nil, err
	}

	inCart := 0
	if line, ok := cart.Line(variantID); ok {
		inCart = line.Quantity
	}
	if err := srv.ensureAvailable(ctx, variant, inCart+qty); err != nil {
		return nil, err
	}

	if _, err := srv.cartRepo.AddLine(ctx, cart.ID, variantID, qty); err != nil {
		return nil, errors.Wrap(err, "failed to add cart line")
	}

	srv.invalidate(ctx, identity)
	srv.log(ctx).Info("Cart item added",
		slog.String("identity", identity.String()),
		slog.String("variantID", variantID.String()),
		slog.Int("quantity", qty),
	)

	return srv.GetCart(ctx, identity)
}

// UpdateItem sets the quantity of a line; zero removes it.
func (srv *cartService) UpdateItem(ctx context.Context, identity entity.Identity, variantID uuid.UUID, qty int) (*usecase.CartView, error) {
	if !identity.IsValid() {
		return nil, domainerrors.ErrIdentityRequired
	}
	if qty < 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}
	if qty == 0 {
		return srv.RemoveItem(ctx, identity, variantID)
	}

	cart, err := srv.findExistingCart(ctx, identity)
	if err != nil {
		return nil, err
	}
	if _, ok := cart.Line(variantID); !ok {
		return nil, domainerrors.ErrCartLineNotFound
	}

	variant, err := srv.findPurchasableVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if err := srv.ensureAvailable(ctx, variant, qty); err != nil {
		return nil, err
	}

	if err := srv.cartRepo.SetLineQuantity(ctx, cart.ID, variantID, qty); err != nil {
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return nil, domainerrors.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart line")
	}

	srv.invalidate(ctx, identity)

	return srv.GetCart(ctx, identity)
}

// RemoveItem deletes the line for a variant.
func (srv *cartService) RemoveItem(ctx context.Context, identity entity.Identity, variantID uuid.UUID) (*usecase.CartView, error) {
	if !identity.IsValid() {
		return nil, domainerrors.ErrIdentityRequired
	}

	cart, err := srv.findExistingCart(ctx, identity)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.RemoveLine(ctx, cart.ID, variantID); err != nil {
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return nil, domainerrors.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to remove cart line")
	}

	srv.invalidate(ctx, identity)

	return srv.GetCart(ctx, identity)
}

// Summary prices the cart including delivery to region.
func (srv *cartService) Summary(ctx context.Context, identity entity.Identity, region string) (*usecase.CartSummary, error) {
	view, err := srv.GetCart(ctx, identity)
	if err != nil {
		return nil, err
	}

	summary := &usecase.CartSummary{
		CartView: *view,
		Total:    view.Subtotal,
	}
	if region == "" {
		return summary, nil
	}

	quote, err := quoteDelivery(ctx, srv.ruleRepo, region, view.Subtotal, srv.fallbackFee, srv.log(ctx))
	if err != nil {
		return nil, err
	}
	summary.Delivery = quote
	summary.Total = view.Subtotal.Add(quote.Fee)

	return summary, nil
}

// ReclaimExpiredCarts deletes carts past their expiry.
func (srv *cartService) ReclaimExpiredCarts(ctx context.Context) (int64, error) {
	deleted, err := srv.cartRepo.DeleteExpiredCarts(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired carts")
	}

	if deleted > 0 {
		srv.log(ctx).Info("Expired carts reclaimed", slog.Int64("count", deleted))
	}

	return deleted, nil
}

// loadCart reads through the cache. A missing or expired cart yields nil without error.
// Concurrent reads for one identity share a single lookup; the result is read-only.
func (srv *cartService) loadCart(ctx context.Context, identity entity.Identity) (*entity.Cart, error) {
	v, err, _ := srv.reads.Do(identity.Key(), func() (any, error) {
		return srv.readThrough(ctx, identity)
	})
	if err != nil {
		return nil, err
	}

	cart, _ := v.(*entity.Cart)
	if cart == nil || cart.IsExpired(time.Now()) {
		return nil, nil
	}

	return cart, nil
}

func (srv *cartService) readThrough(ctx context.Context, identity entity.Identity) (*entity.Cart, error) {
	cart, err := srv.cache.GetCart(ctx, identity)
	if err != nil {
		srv.log(ctx).Warn("Cart cache read failed", slog.Any("error", err))
	}
	if cart != nil {
		return cart, nil
	}

	cart, err = srv.cartRepo.FindCartByIdentity(ctx, identity)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	if err := srv.cache.SetCart(ctx, identity, cart); err != nil {
		srv.log(ctx).Warn("Cart cache write failed", slog.Any("error", err))
	}

	return cart, nil
}

func (srv *cartService) findExistingCart(ctx context.Context, identity entity.Identity) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByIdentity(ctx, identity)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartLineNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

// getOrCreateCart creates the cart lazily; a concurrent create for the same identity is resolved by re-reading.
func (srv *cartService) getOrCreateCart(ctx context.Context, identity entity.Identity) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByIdentity(ctx, identity)
	if err == nil {
		now := time.Now()
		if cart.IsExpired(now) {
			if err := srv.renewExpiredCart(ctx, cart, now); err != nil {
				return nil, err
			}
		}

		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = entity.NewCart(identity, time.Now(), srv.cartTTL)
	err = srv.cartRepo.CreateCart(ctx, cart)
	if errors.Is(err, repository.ErrDuplicateCart) {
		cart, err = srv.cartRepo.FindCartByIdentity(ctx, identity)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

// renewExpiredCart empties a cart the janitor has not reclaimed yet and starts a new lifetime.
func (srv *cartService) renewExpiredCart(ctx context.Context, cart *entity.Cart, now time.Time) error {
	if !cart.IsEmpty() {
		if err := srv.cartRepo.ClearLines(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear expired cart")
		}
		cart.Lines = nil
	}

	expiresAt := now.Add(srv.cartTTL)
	if err := srv.cartRepo.ExtendCart(ctx, cart.ID, expiresAt); err != nil {
		return errors.Wrap(err, "failed to renew expired cart")
	}
	cart.ExpiresAt = expiresAt

	return nil
}

func (srv *cartService) findPurchasableVariant(ctx context.Context, variantID uuid.UUID) (*entity.Variant, error) {
	variant, err := srv.variantRepo.FindVariantByID(ctx, variantID)
	if errors.Is(err, repository.ErrVariantNotFound) {
		return nil, domainerrors.ErrVariantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find variant")
	}

	if !variant.IsActive {
		return nil, domainerrors.ErrVariantUnavailable.WithDetails(variant.DisplayName())
	}

	return variant, nil
}

// ensureAvailable checks the summed availability across locations; it does not reserve.
func (srv *cartService) ensureAvailable(ctx context.Context, variant *entity.Variant, wanted int) error {
	records, err := srv.stockRepo.FindByVariants(ctx, []uuid.UUID{variant.ID})
	if err != nil {
		return errors.Wrap(err, "failed to read stock")
	}

	if entity.TotalAvailable(records) < wanted {
		return domainerrors.ErrInsufficientStock.WithDetails(variant.DisplayName())
	}

	return nil
}

func (srv *cartService) invalidate(ctx context.Context, identity entity.Identity) {
	if err := srv.cache.InvalidateCart(ctx, identity); err != nil {
		srv.log(ctx).Warn("Cart cache invalidation failed", slog.Any("error", err))
	}
}

func (srv *cartService) buildView(ctx context.Context, cart *entity.Cart) (*usecase.CartView, error) {
	view := &usecase.CartView{
		Lines:    []usecase.CartLineView{},
		Subtotal: decimal.Zero,
	}
	if cart == nil {
		return view, nil
	}

	id := cart.ID
	view.CartID = &id
	if cart.IsEmpty() {
		return view, nil
	}

	variants, err := srv.variantRepo.FindVariantsByIDs(ctx, cart.VariantIDs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart variants")
	}
	records, err := srv.stockRepo.FindByVariants(ctx, cart.VariantIDs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stock")
	}

	variantByID := make(map[uuid.UUID]*entity.Variant, len(variants))
	for _, v := range variants {
		variantByID[v.ID] = v
	}
	stockByVariant := make(map[uuid.UUID][]*entity.StockRecord)
	for _, rec := range records {
		stockByVariant[rec.VariantID] = append(stockByVariant[rec.VariantID], rec)
	}

	for _, line := range cart.Lines {
		variant, ok := variantByID[line.VariantID]
		if !ok {
			continue
		}
		lineTotal := variant.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Lines = append(view.Lines, usecase.CartLineView{
			VariantID:   line.VariantID,
			ProductName: variant.DisplayName(),
			SKU:         variant.SKU,
			ImageURL:    variant.ImageURL,
			UnitPrice:   variant.Price,
			Quantity:    line.Quantity,
			LineTotal:   lineTotal,
			Available:   entity.TotalAvailable(stockByVariant[line.VariantID]),
		})
		view.ItemCount += line.Quantity
		view.Subtotal = view.Subtotal.Add(lineTotal)
	}

	return view, nil
}
