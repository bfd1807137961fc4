package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kabi09/AKcart/internal/modules/auth"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, mw *auth.Middleware) {
	r.Get("/api/v1/products", h.listProducts)      // GET  /api/v1/products
	r.Get("/api/v1/product/{id}", h.getProduct)    // GET  /api/v1/product/{id}
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate, mw.RequireRole("admin"))
		r.Post("/api/v1/admin/product/new", h.addProduct) // POST /api/v1/admin/product/new
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true, "products": products})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrProductNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]interface{}{"success": false, "message": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true, "product": p})
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": err.Error()})
		return
	}
	p, err := h.service.AddProduct(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if err.Error() == "name is required" {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]interface{}{"success": false, "message": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true, "product": p})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
