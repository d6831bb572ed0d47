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

// FAQRequest defines the structure for FAQ creation/update requests
type FAQRequest struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sort_order"`
	Active    *bool  `json:"active"`
}

// PublicFAQs handles GET /faqs on the storefront
func PublicFAQs(c echo.Context) error {
	log := logger.FromEcho(c)
	store := middleware.CurrentStore(c)

	var faqs []model.FAQ
	result := database.GetDB().
		Where("store_id = ? AND active = ?", store.ID, true).
		Order("sort_order").
		Find(&faqs)
	if result.Error != nil {
		log.Error("Failed to load FAQs", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos cargar las preguntas frecuentes"})
	}

	return c.JSON(http.StatusOK, faqs)
}

// ListFAQs retrieves all FAQs of the owner's store
func ListFAQs(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var faqs []model.FAQ
	result := database.GetDB().Where("store_id = ?", storeID).Order("sort_order").Find(&faqs)
	if result.Error != nil {
		log.Error("Failed to retrieve FAQs", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve FAQs"})
	}

	return c.JSON(http.StatusOK, faqs)
}

// CreateFAQ handles creating a new FAQ
func CreateFAQ(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Question == "" || req.Answer == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "question and answer are required"})
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	faq := model.FAQ{
		StoreID:   storeID,
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		Active:    active,
	}

	if err := database.GetDB().Create(&faq).Error; err != nil {
		log.Error("Failed to create FAQ", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create FAQ"})
	}

	log.Info("FAQ created",
		zap.Uint("faq_id", faq.ID),
		zap.Uint("store_id", storeID))
	return c.JSON(http.StatusCreated, faq)
}

// UpdateFAQ handles updating an existing FAQ
func UpdateFAQ(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var faq model.FAQ
	result := database.GetDB().Where("id = ? AND store_id = ?", id, storeID).First(&faq)
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "FAQ not found"})
	}

	if req.Question != "" {
		faq.Question = req.Question
	}
	if req.Answer != "" {
		faq.Answer = req.Answer
	}
	faq.SortOrder = req.SortOrder
	if req.Active != nil {
		faq.Active = *req.Active
	}

	if err := database.GetDB().Save(&faq).Error; err != nil {
		log.Error("Failed to update FAQ", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update FAQ"})
	}

	return c.JSON(http.StatusOK, faq)
}

// DeleteFAQ handles deleting a FAQ
func DeleteFAQ(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	result := database.GetDB().Where("store_id = ?", storeID).Delete(&model.FAQ{}, id)
	if result.Error != nil {
		log.Error("Failed to delete FAQ", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete FAQ"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "FAQ not found"})
	}

	log.Info("FAQ deleted", zap.String("faq_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "FAQ deleted successfully"})
}
