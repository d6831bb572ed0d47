package handler

import (
	"net/http"
	"strconv"

	"github.com/catalogico/storefront/internal/middleware"
	"github.com/catalogico/storefront/internal/model"
	"github.com/catalogico/storefront/pkg/database"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UploadProductMedia handles POST /api/products/:id/media. The image goes to
// Cloudinary and only its URL and public id are stored.
func UploadProductMedia(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}
	product, ok := ownedProduct(storeID, uint(productID))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read image"})
	}
	defer file.Close()

	if appConfig.Media.CloudinaryURL == "" {
		log.Error("Cloudinary not configured")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "media storage not configured"})
	}
	cld, err := cloudinary.NewFromURL(appConfig.Media.CloudinaryURL)
	if err != nil {
		log.Error("Cloudinary init failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "media storage error"})
	}

	uploadResult, err := cld.Upload.Upload(c.Request().Context(), file, uploader.UploadParams{
		Folder: "products",
	})
	if err != nil {
		log.Error("Media upload failed",
			zap.Uint("product_id", product.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}

	sortOrder, _ := strconv.Atoi(c.FormValue("sort_order"))
	image := model.ProductImage{
		ProductID: product.ID,
		URL:       uploadResult.SecureURL,
		PublicID:  uploadResult.PublicID,
		SortOrder: sortOrder,
	}
	if err := database.GetDB().Create(&image).Error; err != nil {
		log.Error("Failed to store product image", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to store image"})
	}

	log.Info("Product media uploaded",
		zap.Uint("product_id", product.ID),
		zap.Uint("image_id", image.ID),
		zap.String("public_id", image.PublicID))
	return c.JSON(http.StatusCreated, image)
}

// DeleteProductMedia handles DELETE /api/media/:id, removing the database row
// and the Cloudinary asset when one is attached.
func DeleteProductMedia(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	storeID, ok := middleware.OwnerStoreID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no store associated with this account"})
	}

	var image model.ProductImage
	result := database.GetDB().
		Joins("JOIN products ON products.id = product_images.product_id").
		Where("product_images.id = ? AND products.store_id = ?", id, storeID).
		First(&image)
	if result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Image not found"})
	}

	if image.PublicID != "" && appConfig.Media.CloudinaryURL != "" {
		if cld, err := cloudinary.NewFromURL(appConfig.Media.CloudinaryURL); err == nil {
			_, err = cld.Upload.Destroy(c.Request().Context(), uploader.DestroyParams{PublicID: image.PublicID})
			if err != nil {
				// The DB row still goes away; the orphan asset is logged
				log.Warn("Failed to delete Cloudinary asset",
					zap.String("public_id", image.PublicID),
					zap.Error(err))
			}
		}
	}

	if err := database.GetDB().Delete(&image).Error; err != nil {
		log.Error("Failed to delete product image", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete image"})
	}

	log.Info("Product media deleted",
		zap.Uint("image_id", image.ID),
		zap.Uint("product_id", image.ProductID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Image deleted successfully"})
}
