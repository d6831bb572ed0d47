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

// SubmitFeedback handles POST /feedback on the storefront: visitors leave a
// complaint or proposal for the store.
func SubmitFeedback(c echo.Context) error {
	log := logger.FromEcho(c)
	store := middleware.CurrentStore(c)

	var req struct {
		AuthorName   string `json:"author_name"`
		AuthorEmail  string `json:"author_email"`
		Message      string `json:"message"`
		FeedbackType string `json:"feedback_type"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message is required"})
	}
	if req.FeedbackType != model.FeedbackComplaint && req.FeedbackType != model.FeedbackProposal {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "feedback_type must be queja or propuesta"})
	}

	feedback := model.StoreFeedback{
		StoreID:      store.ID,
		AuthorName:   req.AuthorName,
		AuthorEmail:  req.AuthorEmail,
		Message:      req.Message,
		FeedbackType: req.FeedbackType,
	}
	if err := database.GetDB().Create(&feedback).Error; err != nil {
		log.Error("Failed to store feedback", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos enviar tu mensaje"})
	}

	log.Info("Feedback submitted",
		zap.Uint("store_id", store.ID),
		zap.String("feedback_type", feedback.FeedbackType))
	return c.JSON(http.StatusCreated, echo.Map{"message": "Gracias por tu mensaje"})
}

// ListFeedback retrieves the owner's feedback inbox, newest first
func ListFeedback(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	query := database.GetDB().Where("store_id = ?", storeID)
	if c.QueryParam("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var feedback []model.StoreFeedback
	result := query.Order("created_at DESC").Find(&feedback)
	if result.Error != nil {
		log.Error("Failed to retrieve feedback", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve feedback"})
	}

	return c.JSON(http.StatusOK, feedback)
}

// MarkFeedbackRead handles POST /api/feedback/:id/read
func MarkFeedbackRead(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	result := database.GetDB().Model(&model.StoreFeedback{}).
		Where("id = ? AND store_id = ?", id, storeID).
		Update("is_read", true)
	if result.Error != nil {
		log.Error("Failed to mark feedback read", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update feedback"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Feedback not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Feedback marked as read"})
}
