package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kabi09/AKcart/internal/modules/auth"
	"github.com/Kabi09/AKcart/internal/modules/notification"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, mw *auth.Middleware) {
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Post("/api/v1/order/new", h.createOrder)        // POST   /api/v1/order/new
		r.Get("/api/v1/order/{id}", h.getOrder)           // GET    /api/v1/order/{id}
		r.Get("/api/v1/myorders", h.myOrders)             // GET    /api/v1/myorders
		r.Put("/api/v1/order/return/{id}", h.returnOrder) // PUT    /api/v1/order/return/{id}
	})
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate, mw.RequireRole("admin"))
		r.Get("/api/v1/admin/orders", h.listAllOrders)        // GET    /api/v1/admin/orders
		r.Put("/api/v1/admin/order/{id}", h.updateStatus)     // PUT    /api/v1/admin/order/{id}
		r.Delete("/api/v1/admin/order/{id}", h.deleteOrder)   // DELETE /api/v1/admin/order/{id}
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.service.CreateOrder(r.Context(), auth.UserID(r.Context()), req)
	if err != nil {
		fail(w, statusFor(err), err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true, "order": o})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			fail(w, http.StatusNotFound, fmt.Sprintf("Order not found with this id: %s", id))
			return
		}
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true, "order": o})
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListUserOrders(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true, "orders": orders})
}

func (h *Handler) listAllOrders(w http.ResponseWriter, r *http.Request) {
	totalAmount, orders, err := h.service.ListAllOrders(r.Context())
	if err != nil {
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"totalAmount": totalAmount,
		"orders":      orders,
	})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.UpdateStatus(r.Context(), id, req); err != nil {
		fail(w, statusFor(err), messageFor(err))
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Order updated successfully"})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			fail(w, http.StatusNotFound, fmt.Sprintf("Order not found with this id: %s", id))
			return
		}
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) returnOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.ReturnOrder(r.Context(), id); err != nil {
		fail(w, statusFor(err), messageFor(err))
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Return request processed and reviews removed.",
	})
}

// ── error mapping ────────────────────────────────────────────────────────────

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyDelivered), errors.Is(err, ErrNotDelivered):
		return http.StatusBadRequest
	case errors.Is(err, notification.ErrDeliveryFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, ErrAlreadyDelivered):
		return "Order has already been delivered!"
	case errors.Is(err, ErrNotDelivered):
		return "Only delivered orders can be returned."
	default:
		return err.Error()
	}
}

func fail(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]interface{}{"success": false, "message": message})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
