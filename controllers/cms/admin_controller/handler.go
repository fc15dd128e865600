package admin_controller

import (
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/YokoReis/focus-flash-forge-23/store"
)

// Handler serves the admin dashboard endpoints.
type Handler struct {
	store    *store.Store
	activity *services.ActivityLogService
}

func NewHandler(st *store.Store, activity *services.ActivityLogService) *Handler {
	return &Handler{store: st, activity: activity}
}
