package handler

import (
	"net/http"

	"github.com/catalogico/storefront/internal/model"
	"github.com/catalogico/storefront/pkg/database"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListTutorials handles GET /tutoriales, the platform help videos
func ListTutorials(c echo.Context) error {
	log := logger.FromEcho(c)

	var tutorials []model.Tutorial
	result := database.GetDB().
		Where("active = ?", true).
		Order("sort_order").
		Find(&tutorials)
	if result.Error != nil {
		log.Error("Failed to load tutorials", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos cargar los tutoriales"})
	}

	return c.JSON(http.StatusOK, tutorials)
}
