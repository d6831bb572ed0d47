package handler

import (
	"github.com/catalogico/storefront/pkg/config"
	"github.com/catalogico/storefront/pkg/jwtutil"
)

var (
	appConfig *config.Config
	jwtUtil   *jwtutil.JWTUtil
)

// Init wires the handlers to the loaded configuration and JWT utility
func Init(cfg *config.Config, jwt *jwtutil.JWTUtil) {
	appConfig = cfg
	jwtUtil = jwt
}
