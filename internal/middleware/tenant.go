package middleware

import (
	"net/http"
	"strings"

	"github.com/catalogico/storefront/internal/model"
	"github.com/catalogico/storefront/pkg/database"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/catalogico/storefront/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const storeContextKey = "store"

// SubdomainFromHost extracts the store slug from a request host.
// "{slug}.{rootDomain}" yields the slug; the root domain itself (optionally
// with a www prefix) yields none.
func SubdomainFromHost(host, rootDomain string) (string, bool) {
	host = strings.ToLower(strings.SplitN(host, ":", 2)[0])
	rootDomain = strings.ToLower(rootDomain)

	if host == rootDomain || host == "www."+rootDomain {
		return "", false
	}
	suffix := "." + rootDomain
	if !strings.HasSuffix(host, suffix) {
		return "", false
	}
	subdomain := strings.TrimSuffix(host, suffix)
	if subdomain == "" || subdomain == "www" || strings.Contains(subdomain, ".") {
		return "", false
	}
	return subdomain, true
}

// TenantMiddleware resolves the current store from the request's subdomain
// and attaches it to the context. Requests on the root domain pass through
// with no store; an unknown subdomain is a 404.
func TenantMiddleware(rootDomain string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subdomain, ok := SubdomainFromHost(c.Request().Host, rootDomain)
			if !ok {
				return next(c)
			}

			log := logger.FromEcho(c)
			var store model.Store
			result := database.GetDB().Where("slug = ? AND active = ?", subdomain, true).First(&store)
			if result.Error != nil {
				prometheus.TenantNotFoundCounter.Inc()
				log.Warn("Store not found for subdomain", zap.String("subdomain", subdomain))
				return c.JSON(http.StatusNotFound, echo.Map{
					"error": "Tienda no encontrada",
				})
			}

			c.Set(storeContextKey, &store)
			return next(c)
		}
	}
}

// CurrentStore returns the store resolved for this request, or nil on the
// root domain.
func CurrentStore(c echo.Context) *model.Store {
	store, ok := c.Get(storeContextKey).(*model.Store)
	if !ok {
		return nil
	}
	return store
}

// RequireStore rejects requests that did not resolve to a store
func RequireStore(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentStore(c) == nil {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Tienda no encontrada",
			})
		}
		return next(c)
	}
}
