package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/catalogico/storefront/internal/middleware"
	"github.com/catalogico/storefront/internal/model"
	"github.com/catalogico/storefront/pkg/database"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/catalogico/storefront/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation/update requests.
// A null price means "price on request", a null stock means unlimited.
type ProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	CategoryID  uint             `json:"category_id"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Status      string           `json:"status"`
}

func (r *ProductRequest) valid() (string, bool) {
	if r.Name == "" {
		return "name is required", false
	}
	if r.Status != "" && r.Status != model.StatusDraft && r.Status != model.StatusPublished {
		return "status must be draft or published", false
	}
	if r.Stock != nil && *r.Stock < 0 {
		return "stock cannot be negative", false
	}
	return "", true
}

// ListProducts handles retrieving all of the owner's products
func ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		log.Warn("Missing store in owner token")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	query := database.GetDB().Preload("Images").Preload("Links").Where("store_id = ?", storeID)

	// Filter by status if specified
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	// Filter by category if specified
	if categoryID := c.QueryParam("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var products []model.Product
	result := query.Order("name").Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products",
			zap.Error(result.Error),
			zap.Uint("store_id", storeID))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	log.Info("Products retrieved successfully",
		zap.Int("count", len(products)),
		zap.Uint("store_id", storeID))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var product model.Product
	result := database.GetDB().Preload("Images").Preload("Links").
		Where("id = ? AND store_id = ?", id, storeID).First(&product)
	if result.Error != nil {
		log.Warn("Product not found",
			zap.String("product_id", id),
			zap.Uint("store_id", storeID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles creating a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if msg, ok := req.valid(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	if req.CategoryID != 0 {
		var count int64
		database.GetDB().Model(&model.Category{}).
			Where("id = ? AND store_id = ?", req.CategoryID, storeID).Count(&count)
		if count == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category not found"})
		}
	}

	status := req.Status
	if status == "" {
		status = model.StatusDraft
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	product := model.Product{
		StoreID:     storeID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        model.UniqueProductSlug(database.GetDB(), storeID, req.Name, 0),
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Status:      status,
	}

	result := database.GetDB().Create(&product)
	if result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	log.Info("Product created successfully",
		zap.String("product_id", strconv.FormatUint(uint64(product.ID), 10)),
		zap.String("name", product.Name),
		zap.String("slug", product.Slug),
		zap.Uint("store_id", storeID))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles updating an existing product
func UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if msg, ok := req.valid(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	var product model.Product
	result := database.GetDB().Where("id = ? AND store_id = ?", id, storeID).First(&product)
	if result.Error != nil {
		log.Warn("Product not found for update",
			zap.String("product_id", id),
			zap.Uint("store_id", storeID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	if req.CategoryID != 0 && req.CategoryID != product.CategoryID {
		var count int64
		database.GetDB().Model(&model.Category{}).
			Where("id = ? AND store_id = ?", req.CategoryID, storeID).Count(&count)
		if count == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category not found"})
		}
	}

	// Re-slug when the name changes
	if req.Name != product.Name {
		product.Slug = model.UniqueProductSlug(database.GetDB(), storeID, req.Name, product.ID)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.CategoryID = req.CategoryID
	product.Price = req.Price
	product.Stock = req.Stock
	if req.Status != "" {
		product.Status = req.Status
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&product)
	if result.Error != nil {
		log.Error("Failed to update product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}

	log.Info("Product updated successfully",
		zap.String("product_id", id),
		zap.String("name", product.Name),
		zap.String("status", product.Status))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles deleting a product (soft delete)
func DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Where("store_id = ?", storeID).Delete(&model.Product{}, id)
	if result.Error != nil {
		log.Error("Failed to delete product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}

	if result.RowsAffected == 0 {
		log.Warn("Product not found for deletion",
			zap.String("product_id", id),
			zap.Uint("store_id", storeID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	log.Info("Product deleted successfully",
		zap.String("product_id", id),
		zap.Uint("store_id", storeID))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted successfully",
	})
}
