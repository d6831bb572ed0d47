package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/catalogico/storefront/internal/cart"
	"github.com/catalogico/storefront/internal/message"
	"github.com/catalogico/storefront/internal/middleware"
	"github.com/catalogico/storefront/internal/model"
	"github.com/catalogico/storefront/internal/price"
	"github.com/catalogico/storefront/pkg/database"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/catalogico/storefront/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// cartParam reads a numeric form/query parameter from a cart mutation request
func cartParam(c echo.Context, name string) (uint, bool) {
	raw := c.FormValue(name)
	if raw == "" {
		raw = c.QueryParam(name)
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// AddToCart handles POST /cart/add. The add is stock-aware: the requested
// quantity is clamped to what is still available, and the outcome tells the
// shopper which of the three cases happened.
func AddToCart(c echo.Context) error {
	log := logger.FromEcho(c)
	store := middleware.CurrentStore(c)
	sess := middleware.CurrentSession(c)

	productID, ok := cartParam(c, "product_id")
	if !ok {
		// Invalid input is a no-op: back to the cart without mutation
		return c.Redirect(http.StatusSeeOther, "/cart")
	}
	quantity := 1
	if raw := c.FormValue("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Redirect(http.StatusSeeOther, "/cart")
		}
		quantity = parsed
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var product model.Product
	result := database.GetDB().
		Where("id = ? AND store_id = ? AND status = ?", productID, store.ID, model.StatusPublished).
		First(&product)
	if result.Error != nil {
		log.Warn("Product not purchasable",
			zap.Uint("product_id", productID),
			zap.Uint("store_id", store.ID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Producto no encontrado"})
	}

	res := cart.AddWithStock(sess, store.ID, &product, quantity)
	prometheus.RecordCartOperation("add", string(res.Outcome))

	if res.Outcome == cart.OutcomeAdded || res.Outcome == cart.OutcomePartial {
		if err := middleware.SaveSession(c, sess); err != nil {
			log.Error("Failed to save session", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos actualizar el carrito"})
		}
	}

	var notice string
	switch res.Outcome {
	case cart.OutcomeAdded:
		notice = "Producto agregado al carrito"
	case cart.OutcomePartial:
		notice = "Solo quedaban " + strconv.Itoa(res.Added) + " unidades, ajustamos tu pedido"
	case cart.OutcomeNoStock:
		notice = "Sin stock disponible"
	default:
		return c.Redirect(http.StatusSeeOther, "/cart")
	}

	log.Info("Cart add processed",
		zap.Uint("store_id", store.ID),
		zap.Uint("product_id", product.ID),
		zap.String("outcome", string(res.Outcome)),
		zap.Int("added", res.Added))

	return c.JSON(http.StatusOK, echo.Map{
		"status": res.Outcome,
		"added":  res.Added,
		"notice": notice,
		"count":  cart.Count(sess, store.ID),
	})
}

// UpdateCartItem handles POST /cart/update. Quantity zero removes the line.
func UpdateCartItem(c echo.Context) error {
	log := logger.FromEcho(c)
	store := middleware.CurrentStore(c)
	sess := middleware.CurrentSession(c)

	productID, ok := cartParam(c, "product_id")
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/cart")
	}
	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/cart")
	}

	cart.Update(sess, store.ID, productID, quantity)
	prometheus.RecordCartOperation("update", "ok")
	if err := middleware.SaveSession(c, sess); err != nil {
		log.Error("Failed to save session", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos actualizar el carrito"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"count":  cart.Count(sess, store.ID),
	})
}

// RemoveFromCart handles POST /cart/remove
func RemoveFromCart(c echo.Context) error {
	log := logger.FromEcho(c)
	store := middleware.CurrentStore(c)
	sess := middleware.CurrentSession(c)

	productID, ok := cartParam(c, "product_id")
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/cart")
	}

	cart.Remove(sess, store.ID, productID)
	prometheus.RecordCartOperation("remove", "ok")
	if err := middleware.SaveSession(c, sess); err != nil {
		log.Error("Failed to save session", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos actualizar el carrito"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"count":  cart.Count(sess, store.ID),
	})
}

// CartCount handles GET /cart/count, for the cart badge
func CartCount(c echo.Context) error {
	store := middleware.CurrentStore(c)
	sess := middleware.CurrentSession(c)
	return c.JSON(http.StatusOK, echo.Map{
		"count": cart.Count(sess, store.ID),
	})
}

// cartLineResponse is one rendered cart line
type cartLineResponse struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Quantity  int     `json:"quantity"`
	Price     *string `json:"price"`
	Subtotal  *string `json:"subtotal"`
}

// ViewCart handles GET /cart. Stored entries are reconciled against the
// store's live products; stale lines are dropped or clamped and the shopper
// is told about it, then the checkout message and send links are built.
func ViewCart(c echo.Context) error {
	log := logger.FromEcho(c)
	store := middleware.CurrentStore(c)
	sess := middleware.CurrentSession(c)

	entries := cart.Entries(sess, store.ID)

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}

	var products []model.Product
	if len(ids) > 0 {
		defer prometheus.TrackDBOperation("query")(time.Now())
		result := database.GetDB().
			Where("store_id = ? AND status = ? AND id IN ?", store.ID, model.StatusPublished, ids).
			Find(&products)
		if result.Error != nil {
			log.Error("Failed to load cart products", zap.Error(result.Error))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos cargar el carrito"})
		}
	}

	reconciled := cart.Reconcile(entries, products)

	var notices []string
	if reconciled.Removed {
		notices = append(notices, "Algunos productos ya no están disponibles y fueron quitados del carrito")
		prometheus.RecordCartOperation("reconcile", "removed")
	}
	if reconciled.Adjusted {
		notices = append(notices, "Ajustamos cantidades según el stock disponible")
		prometheus.RecordCartOperation("reconcile", "adjusted")
	}
	if reconciled.Changed() {
		cart.Replace(sess, store.ID, reconciled.Items)
		if err := middleware.SaveSession(c, sess); err != nil {
			log.Error("Failed to save session", zap.Error(err))
		}
	}

	total, priced := reconciled.Total()
	totalDisplay := price.OnRequestLabel
	if priced {
		totalDisplay = price.FormatCurrency(total)
	}

	lines := make([]cartLineResponse, 0, len(reconciled.Lines))
	orderItems := make([]message.OrderItem, 0, len(reconciled.Lines))
	for _, line := range reconciled.Lines {
		resp := cartLineResponse{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Slug:      line.Product.Slug,
			Quantity:  line.Quantity,
		}
		if !line.Product.PriceOnRequest() {
			p := price.FormatCurrency(*line.Product.Price)
			resp.Price = &p
		}
		if line.Subtotal != nil {
			s := price.FormatCurrency(*line.Subtotal)
			resp.Subtotal = &s
		}
		lines = append(lines, resp)
		orderItems = append(orderItems, message.OrderItem{
			Name:           line.Product.Name,
			Quantity:       line.Quantity,
			PriceOnRequest: line.Product.PriceOnRequest(),
		})
	}

	config := storeConfig(store.ID)
	var template string
	if config != nil {
		template = config.OrderMessageTemplate
	}
	orderMessage := message.BuildOrderMessage(template, orderItems, totalDisplay)
	links := message.BuildCheckoutLinks(config, orderMessage)
	if links.WhatsApp != "" {
		prometheus.RecordCheckoutMessage("whatsapp")
	}
	if links.Instagram != "" {
		prometheus.RecordCheckoutMessage("instagram")
	}

	log.Info("Cart rendered",
		zap.Uint("store_id", store.ID),
		zap.Int("lines", len(lines)),
		zap.Bool("removed", reconciled.Removed),
		zap.Bool("adjusted", reconciled.Adjusted))

	return c.JSON(http.StatusOK, echo.Map{
		"lines":    lines,
		"count":    cart.Count(sess, store.ID),
		"total":    totalDisplay,
		"notices":  notices,
		"message":  orderMessage,
		"checkout": links,
	})
}

// storeConfig loads a store's configuration, nil when none exists
func storeConfig(storeID uint) *model.StoreConfig {
	var config model.StoreConfig
	result := database.GetDB().Where("store_id = ?", storeID).First(&config)
	if result.Error != nil {
		return nil
	}
	return &config
}
