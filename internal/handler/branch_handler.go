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

// BranchRequest defines the structure for branch creation/update requests
type BranchRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Hours     string `json:"hours"`
	SortOrder int    `json:"sort_order"`
	Active    *bool  `json:"active"`
}

// PublicBranches handles GET /sucursales on the storefront
func PublicBranches(c echo.Context) error {
	log := logger.FromEcho(c)
	store := middleware.CurrentStore(c)

	var branches []model.Branch
	result := database.GetDB().
		Where("store_id = ? AND active = ?", store.ID, true).
		Order("sort_order, name").
		Find(&branches)
	if result.Error != nil {
		log.Error("Failed to load branches", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "No pudimos cargar las sucursales"})
	}

	return c.JSON(http.StatusOK, branches)
}

// ListBranches retrieves all branches of the owner's store
func ListBranches(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var branches []model.Branch
	result := database.GetDB().Where("store_id = ?", storeID).Order("sort_order, name").Find(&branches)
	if result.Error != nil {
		log.Error("Failed to retrieve branches", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve branches"})
	}

	return c.JSON(http.StatusOK, branches)
}

// CreateBranch handles creating a new branch
func CreateBranch(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req BranchRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	branch := model.Branch{
		StoreID:   storeID,
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Hours:     req.Hours,
		SortOrder: req.SortOrder,
		Active:    active,
	}

	if err := database.GetDB().Create(&branch).Error; err != nil {
		log.Error("Failed to create branch", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create branch"})
	}

	log.Info("Branch created",
		zap.Uint("branch_id", branch.ID),
		zap.Uint("store_id", storeID))
	return c.JSON(http.StatusCreated, branch)
}

// UpdateBranch handles updating an existing branch
func UpdateBranch(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var req BranchRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var branch model.Branch
	result := database.GetDB().Where("id = ? AND store_id = ?", id, storeID).First(&branch)
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Branch not found"})
	}

	if req.Name != "" {
		branch.Name = req.Name
	}
	branch.Address = req.Address
	branch.Phone = req.Phone
	branch.Hours = req.Hours
	branch.SortOrder = req.SortOrder
	if req.Active != nil {
		branch.Active = *req.Active
	}

	if err := database.GetDB().Save(&branch).Error; err != nil {
		log.Error("Failed to update branch", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update branch"})
	}

	return c.JSON(http.StatusOK, branch)
}

// DeleteBranch handles deleting a branch
func DeleteBranch(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	result := database.GetDB().Where("store_id = ?", storeID).Delete(&model.Branch{}, id)
	if result.Error != nil {
		log.Error("Failed to delete branch", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete branch"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Branch not found"})
	}

	log.Info("Branch deleted", zap.String("branch_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Branch deleted successfully"})
}
