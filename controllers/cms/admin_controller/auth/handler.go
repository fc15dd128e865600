package admin_auth_controller

import (
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/YokoReis/focus-flash-forge-23/store"
)

// Handler serves the admin session endpoints.
type Handler struct {
	store        *store.Store
	jwt          *services.JWTService
	activity     *services.ActivityLogService
	secureCookie bool
}

// NewHandler wires the session endpoints. secureCookie marks the admin cookie
// Secure, which production deployments behind TLS want.
func NewHandler(st *store.Store, jwtService *services.JWTService, activity *services.ActivityLogService, secureCookie bool) *Handler {
	return &Handler{store: st, jwt: jwtService, activity: activity, secureCookie: secureCookie}
}
