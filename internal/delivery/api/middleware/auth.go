package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	cartSessionMaxAge = 7 * 24 * time.Hour

	contextKeyUserID   = "userID"
	contextKeyRoles    = "roles"
	contextKeyIdentity = "identity"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Config   *config.Config
	Logger   *slog.Logger
}

// AuthMiddleware resolves who is calling: a signed-in customer or operator
// from a Bearer token, or an anonymous shopper from the cart session cookie.
type AuthMiddleware struct {
	tokenSvc     service.TokenService
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:     params.TokenSvc,
		cookieSecure: params.Config.Cart.CookieSecure,
		logger:       params.Logger,
	}
}

// Authenticate requires a valid Bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, present, ok := bearerToken(c.Request())
		if !present {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		if !m.applyToken(c, tokenString) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// ResolveIdentity accepts a Bearer token when one is sent and otherwise falls
// back to the cart session cookie, issuing a new session when there is none.
func (m *AuthMiddleware) ResolveIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, present, ok := bearerToken(c.Request()); present {
			if !ok || !m.applyToken(c, tokenString) {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			}

			return next(c)
		}

		token := ""
		if cookie, err := c.Cookie(constants.CartSessionCookie); err == nil {
			token = strings.TrimSpace(cookie.Value)
		}
		if token == "" {
			token = uuid.NewString()
			c.SetCookie(m.sessionCookie(token))
		}

		setIdentity(c, entity.SessionIdentity(token))

		return next(c)
	}
}

// RequireRole checks the caller holds role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !roles.Contains(role) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Role check failed",
					slog.String("required_role", role.String()),
					slog.Any("roles", roles.ToStrings()),
				)

				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) applyToken(c echo.Context, tokenString string) bool {
	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Token rejected", slog.Any("error", err))

		return false
	}

	c.Set(contextKeyUserID, claims.UserID)
	c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))
	setIdentity(c, entity.CustomerIdentity(claims.UserID))

	return true
}

// setIdentity stores the caller and tags the request logger with it.
func setIdentity(c echo.Context, identity entity.Identity) {
	c.Set(contextKeyIdentity, identity)

	req := c.Request()
	ctx := deliverycontext.WithLoggerAttrs(req.Context(), slog.String("caller", identity.String()))
	c.SetRequest(req.WithContext(ctx))
}

func (m *AuthMiddleware) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     constants.CartSessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cartSessionMaxAge.Seconds()),
		Expires:  time.Now().Add(cartSessionMaxAge),
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// bearerToken reports whether an Authorization header was sent and whether it
// carried a Bearer token.
func bearerToken(req *http.Request) (token string, present, ok bool) {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false, false
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", true, false
	}

	return strings.TrimSpace(token), true, true
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}

// GetIdentity returns the caller identity set by Authenticate or ResolveIdentity.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(contextKeyIdentity).(entity.Identity)
	if !ok || !identity.IsValid() {
		return entity.Identity{}, false
	}

	return identity, true
}

// IsOperator reports whether the caller holds the operator role.
func IsOperator(c echo.Context) bool {
	roles, ok := GetRoles(c)

	return ok && roles.Contains(entity.RoleOperator)
}
