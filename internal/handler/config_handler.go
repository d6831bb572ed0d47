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

// ConfigRequest defines the structure for store configuration updates
type ConfigRequest struct {
	WhatsAppNumber          string `json:"whatsapp_number"`
	InstagramUsername       string `json:"instagram_username"`
	FacebookPage            string `json:"facebook_page"`
	MarketplaceStore        string `json:"marketplace_store"`
	Address                 string `json:"address"`
	Hours                   string `json:"hours"`
	LocationURL             string `json:"location_url"`
	WhatsAppMessageTemplate string `json:"whatsapp_message_template"`
	OrderMessageTemplate    string `json:"order_message_template"`
}

// GetStoreConfig handles GET /api/config
func GetStoreConfig(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var config model.StoreConfig
	result := database.GetDB().Where("store_id = ?", storeID).First(&config)
	if result.Error != nil {
		log.Warn("Store config not found", zap.Uint("store_id", storeID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Store configuration not found"})
	}

	return c.JSON(http.StatusOK, config)
}

// UpdateStoreConfig handles PUT /api/config, creating the row when a store
// has none yet.
func UpdateStoreConfig(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req ConfigRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var config model.StoreConfig
	result := database.GetDB().Where("store_id = ?", storeID).First(&config)
	if result.Error != nil {
		config = model.StoreConfig{StoreID: storeID}
	}

	config.WhatsAppNumber = req.WhatsAppNumber
	config.InstagramUsername = req.InstagramUsername
	config.FacebookPage = req.FacebookPage
	config.MarketplaceStore = req.MarketplaceStore
	config.Address = req.Address
	config.Hours = req.Hours
	config.LocationURL = req.LocationURL
	config.WhatsAppMessageTemplate = req.WhatsAppMessageTemplate
	config.OrderMessageTemplate = req.OrderMessageTemplate

	if err := database.GetDB().Save(&config).Error; err != nil {
		log.Error("Failed to save store config",
			zap.Uint("store_id", storeID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save configuration"})
	}

	log.Info("Store config updated", zap.Uint("store_id", storeID))
	return c.JSON(http.StatusOK, config)
}
