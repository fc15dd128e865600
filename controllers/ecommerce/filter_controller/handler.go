package filter_controller

import "github.com/YokoReis/focus-flash-forge-23/store"

// Handler serves filter metadata and the session's search/filter state.
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}
