package cart_controller

import (
	"time"

	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/YokoReis/focus-flash-forge-23/store"
)

// Handler serves the cart endpoints.
type Handler struct {
	store  *store.Store
	mailer *services.ResendClient
	now    func() time.Time
}

// NewHandler wires the cart endpoints. mailer may be nil; quote emails then answer 503.
func NewHandler(st *store.Store, mailer *services.ResendClient) *Handler {
	return &Handler{store: st, mailer: mailer, now: time.Now}
}
