package handler

import (
	"net/http"
	"time"

	"github.com/catalogico/storefront/internal/message"
	"github.com/catalogico/storefront/internal/middleware"
	"github.com/catalogico/storefront/internal/model"
	"github.com/catalogico/storefront/internal/price"
	"github.com/catalogico/storefront/pkg/database"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/catalogico/storefront/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// productResponse is a published product as the public catalog shows it
type productResponse struct {
	ID          uint                   `json:"id"`
	CategoryID  uint                   `json:"category_id"`
	Name        string                 `json:"name"`
	Slug        string                 `json:"slug"`
	Description string                 `json:"description"`
	Price       *string                `json:"price"`
	Stock       *int                   `json:"stock"`
	Images      []model.ProductImage   `json:"images"`
	Links       []message.ResolvedLink `json:"links,omitempty"`
}

func publicProduct(p *model.Product) productResponse {
	resp := productResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Stock:       p.Stock,
		Images:      p.Images,
	}
	if !p.PriceOnRequest() {
		formatted := price.FormatCurrency(*p.Price)
		resp.Price = &formatted
	}
	return resp
}

// Catalog handles GET /, the public storefront listing
func Catalog(c echo.Context) error {
	log := logger.FromEcho(c)
	store := middleware.CurrentStore(c)

	defer prometheus.TrackDBOperation("query")(time.Now())

	var categories []model.Category
	result := database.GetDB().
		Where("store_id = ? AND active = ?", store.ID, true).
		Order("sort_order, name").
		Find(&categories)
	if result.Error != nil {
		log.Error("Failed to load categories", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos cargar el catálogo"})
	}

	query := database.GetDB().
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Where("store_id = ? AND status = ?", store.ID, model.StatusPublished)
	if categorySlug := c.QueryParam("categoria"); categorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", categorySlug)
	}

	var products []model.Product
	result = query.Order("products.name").Find(&products)
	if result.Error != nil {
		log.Error("Failed to load products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos cargar el catálogo"})
	}

	responses := make([]productResponse, 0, len(products))
	for i := range products {
		responses = append(responses, publicProduct(&products[i]))
	}

	log.Info("Catalog rendered",
		zap.Uint("store_id", store.ID),
		zap.Int("products", len(products)))

	return c.JSON(http.StatusOK, echo.Map{
		"store":      echo.Map{"name": store.Name, "slug": store.Slug},
		"categories": categories,
		"products":   responses,
	})
}

// ProductDetail handles GET /producto/:slug, the public detail page with the
// product's resolved purchase links.
func ProductDetail(c echo.Context) error {
	log := logger.FromEcho(c)
	store := middleware.CurrentStore(c)
	slug := c.Param("slug")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var product model.Product
	result := database.GetDB().
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Links").
		Where("store_id = ? AND slug = ? AND status = ?", store.ID, slug, model.StatusPublished).
		First(&product)
	if result.Error != nil {
		log.Warn("Product not found",
			zap.Uint("store_id", store.ID),
			zap.String("slug", slug))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Producto no encontrado"})
	}

	prometheus.RecordProductView(store.Slug)

	config := storeConfig(store.ID)
	productURL := message.ProductURL(appConfig.Tenant.RootDomain, store.Slug, product.Slug)

	resp := publicProduct(&product)
	resp.Links = message.ResolveProductLinks(product.Links, &product, config, productURL)

	log.Info("Product detail rendered",
		zap.Uint("store_id", store.ID),
		zap.Uint("product_id", product.ID),
		zap.Int("links", len(resp.Links)))

	return c.JSON(http.StatusOK, resp)
}
