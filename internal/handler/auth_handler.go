package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/catalogico/storefront/internal/model"
	"github.com/catalogico/storefront/pkg/database"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/catalogico/storefront/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register handles POST /auth/register: creates the owner account and its
// store in one step.
func Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		StoreName string `json:"store_name"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse register request", zap.Error(err))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Email == "" || len(req.Password) < 8 || req.StoreName == "" {
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password (8+ chars) and store_name are required"})
	}

	var count int64
	database.GetDB().Model(&model.Owner{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		log.Warn("Email already registered", zap.String("email", req.Email))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	slug := uniqueStoreSlug(database.GetDB(), req.StoreName)

	var store model.Store
	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		owner := model.Owner{Email: req.Email, PasswordHash: string(hash)}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}
		store = model.Store{Name: req.StoreName, Slug: slug, OwnerID: owner.ID, Active: true}
		if err := tx.Create(&store).Error; err != nil {
			return err
		}
		// Every store starts with an empty config row
		return tx.Create(&model.StoreConfig{StoreID: store.ID}).Error
	})
	if err != nil {
		log.Error("Failed to create owner and store", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("Store registered",
		zap.String("email", req.Email),
		zap.Uint("store_id", store.ID),
		zap.String("slug", store.Slug))

	return c.JSON(http.StatusCreated, echo.Map{
		"store": store,
		"url":   storeURL(store.Slug),
	})
}

// Login handles POST /auth/login. On success it returns the JWT and the
// owner's storefront URL so the client can redirect to the subdomain.
func Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var owner model.Owner
	result := database.GetDB().Where("email = ?", req.Email).First(&owner)
	if result.Error != nil {
		log.Warn("Owner not found", zap.String("email", req.Email))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	var storeID *uint
	var storeSlug string
	var store model.Store
	if result := database.GetDB().Where("owner_id = ?", owner.ID).First(&store); result.Error == nil {
		storeID = &store.ID
		storeSlug = store.Slug
	}

	token, err := jwtUtil.GenerateToken(owner.Email, owner.ID, storeID, storeSlug)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("Owner logged in",
		zap.String("email", owner.Email),
		zap.String("store_slug", storeSlug))

	resp := echo.Map{"token": token}
	if storeSlug != "" {
		resp["redirect"] = storeURL(storeSlug)
	}
	return c.JSON(http.StatusOK, resp)
}

// storeURL builds the public URL of a store's subdomain
func storeURL(slug string) string {
	return fmt.Sprintf("https://%s.%s/", slug, appConfig.Tenant.RootDomain)
}

// uniqueStoreSlug builds a subdomain slug no other store uses
func uniqueStoreSlug(db *gorm.DB, name string) string {
	base := model.Slugify(name)
	if base == "" {
		base = "tienda"
	}
	slug := base
	for counter := 1; ; counter++ {
		var count int64
		db.Model(&model.Store{}).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
