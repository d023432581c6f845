package handlers

import (
	"net/http"

	"github.com/archemics/salessnap/internal/httpx"
	"github.com/archemics/salessnap/internal/store"
)

type DashboardHandler struct {
	Store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler { return &DashboardHandler{Store: s} }

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.Store.DashboardStats())
}
