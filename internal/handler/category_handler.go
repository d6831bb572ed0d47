package handler

import (
	"net/http"

	"github.com/catalogico/storefront/internal/middleware"
	"github.com/catalogico/storefront/internal/model"
	"github.com/catalogico/storefront/pkg/database"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CategoryRequest defines the structure for category creation/update requests
type CategoryRequest struct {
	Name      string `json:"name" validate:"required"`
	Active    *bool  `json:"active"`
	SortOrder int    `json:"sort_order"`
}

// ListCategories retrieves all categories of the owner's store
func ListCategories(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		log.Warn("Missing store in owner token")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var categories []model.Category
	result := database.GetDB().Where("store_id = ?", storeID).Order("sort_order, name").Find(&categories)
	if result.Error != nil {
		log.Error("Failed to retrieve categories",
			zap.Error(result.Error),
			zap.Uint("store_id", storeID))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	return c.JSON(http.StatusOK, categories)
}

// GetCategory retrieves a specific category by ID
func GetCategory(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var category model.Category
	result := database.GetDB().Where("id = ? AND store_id = ?", id, storeID).First(&category)
	if result.Error != nil {
		log.Warn("Category not found",
			zap.String("category_id", id),
			zap.Uint("store_id", storeID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Category not found",
		})
	}

	return c.JSON(http.StatusOK, category)
}

// CreateCategory handles creating a new category
func CreateCategory(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	category := model.Category{
		StoreID:   storeID,
		Name:      req.Name,
		Slug:      model.Slugify(req.Name),
		Active:    active,
		SortOrder: req.SortOrder,
	}

	result := database.GetDB().Create(&category)
	if result.Error != nil {
		log.Error("Failed to create category",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create category",
		})
	}

	log.Info("Category created successfully",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name),
		zap.Uint("store_id", storeID))
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles updating an existing category
func UpdateCategory(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	var category model.Category
	result := database.GetDB().Where("id = ? AND store_id = ?", id, storeID).First(&category)
	if result.Error != nil {
		log.Warn("Category not found for update",
			zap.String("category_id", id),
			zap.Uint("store_id", storeID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Category not found",
		})
	}

	if req.Name != "" && req.Name != category.Name {
		category.Name = req.Name
		category.Slug = model.Slugify(req.Name)
	}
	if req.Active != nil {
		category.Active = *req.Active
	}
	category.SortOrder = req.SortOrder

	result = database.GetDB().Save(&category)
	if result.Error != nil {
		log.Error("Failed to update category",
			zap.String("category_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update category",
		})
	}

	log.Info("Category updated successfully",
		zap.String("category_id", id),
		zap.String("name", category.Name))
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles deleting a category. Categories still holding
// products cannot be removed.
func DeleteCategory(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var productCount int64
	database.GetDB().Model(&model.Product{}).
		Where("category_id = ? AND store_id = ?", id, storeID).Count(&productCount)
	if productCount > 0 {
		log.Warn("Category still has products",
			zap.String("category_id", id),
			zap.Int64("products", productCount))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Category still has products",
		})
	}

	result := database.GetDB().Where("store_id = ?", storeID).Delete(&model.Category{}, id)
	if result.Error != nil {
		log.Error("Failed to delete category",
			zap.String("category_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete category",
		})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Category not found",
		})
	}

	log.Info("Category deleted successfully",
		zap.String("category_id", id),
		zap.Uint("store_id", storeID))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Category deleted successfully",
	})
}
