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

// LinkRequest defines the structure for product link creation/update requests
type LinkRequest struct {
	ProductID  uint   `json:"product_id"`
	LinkType   string `json:"link_type"`
	URL        string `json:"url"`
	ButtonText string `json:"button_text"`
	SortOrder  int    `json:"sort_order"`
}

// normalize validates the request and blanks the derived fields for
// non-external channels. URL and button text are mandatory for external links.
func (r *LinkRequest) normalize() (string, bool) {
	if !model.ValidLinkType(r.LinkType) {
		return "unknown link_type", false
	}
	if r.LinkType == model.LinkTypeExternal {
		if r.URL == "" {
			return "url is required for external links", false
		}
		if r.ButtonText == "" {
			return "button_text is required for external links", false
		}
		return "", true
	}
	r.URL = ""
	r.ButtonText = ""
	return "", true
}

// ownedProduct loads a product ensuring it belongs to the owner's store
func ownedProduct(storeID, productID uint) (*model.Product, bool) {
	var product model.Product
	result := database.GetDB().Where("id = ? AND store_id = ?", productID, storeID).First(&product)
	if result.Error != nil {
		return nil, false
	}
	return &product, true
}

// ListProductLinks retrieves a product's purchase links
func ListProductLinks(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	productID, ok := cartParam(c, "product_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id is required"})
	}
	if _, ok := ownedProduct(storeID, productID); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	var links []model.ProductLink
	result := database.GetDB().Where("product_id = ?", productID).Order("sort_order").Find(&links)
	if result.Error != nil {
		log.Error("Failed to retrieve product links", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve links"})
	}

	return c.JSON(http.StatusOK, links)
}

// CreateProductLink handles adding a purchase link to a product
func CreateProductLink(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if msg, ok := req.normalize(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if _, ok := ownedProduct(storeID, req.ProductID); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	link := model.ProductLink{
		ProductID:  req.ProductID,
		LinkType:   req.LinkType,
		URL:        req.URL,
		ButtonText: req.ButtonText,
		SortOrder:  req.SortOrder,
	}
	result := database.GetDB().Create(&link)
	if result.Error != nil {
		log.Error("Failed to create product link", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create link"})
	}

	log.Info("Product link created",
		zap.Uint("link_id", link.ID),
		zap.Uint("product_id", link.ProductID),
		zap.String("link_type", link.LinkType))
	return c.JSON(http.StatusCreated, link)
}

// UpdateProductLink handles updating a purchase link
func UpdateProductLink(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if msg, ok := req.normalize(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	var link model.ProductLink
	result := database.GetDB().
		Joins("JOIN products ON products.id = product_links.product_id").
		Where("product_links.id = ? AND products.store_id = ?", id, storeID).
		First(&link)
	if result.Error != nil {
		log.Warn("Product link not found", zap.String("link_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Link not found"})
	}

	link.LinkType = req.LinkType
	link.URL = req.URL
	link.ButtonText = req.ButtonText
	link.SortOrder = req.SortOrder

	result = database.GetDB().Save(&link)
	if result.Error != nil {
		log.Error("Failed to update product link", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update link"})
	}

	return c.JSON(http.StatusOK, link)
}

// DeleteProductLink handles removing a purchase link
func DeleteProductLink(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var link model.ProductLink
	result := database.GetDB().
		Joins("JOIN products ON products.id = product_links.product_id").
		Where("product_links.id = ? AND products.store_id = ?", id, storeID).
		First(&link)
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Link not found"})
	}

	if err := database.GetDB().Delete(&link).Error; err != nil {
		log.Error("Failed to delete product link", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete link"})
	}

	log.Info("Product link deleted", zap.String("link_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Link deleted successfully"})
}
