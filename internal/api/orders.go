package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/halcyonarts/gallery/internal/model"
	"github.com/halcyonarts/gallery/internal/store"
)

// OrdersHandler handles order endpoints.
type OrdersHandler struct {
	DB *sql.DB
}

type createOrderRequest struct {
	UserID         *int64 `json:"user_id"`
	ArtworkID      int64  `json:"artwork_id"`
	PaymentMethod  string `json:"payment_method"`
	PaymentProof   string `json:"payment_proof"`
	PaymentStatus  string `json:"payment_status"`
	ShippingStatus string `json:"shipping_status"`
}

type createCashAppOrderRequest struct {
	UserID       *int64 `json:"user_id"`
	ArtworkID    int64  `json:"artwork_id"`
	PaymentProof string `json:"payment_proof"`
}

type updateOrderStatusRequest struct {
	PaymentStatus  *string `json:"payment_status"`
	ShippingStatus *string `json:"shipping_status"`
	TrackingNumber *string `json:"tracking_number"`
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.PaymentMethod) < 2 {
		jsonError(w, http.StatusBadRequest, "payment_method must be at least 2 characters")
		return
	}
	if req.PaymentProof != "" && !validURL(req.PaymentProof) {
		jsonError(w, http.StatusBadRequest, "payment_proof must be a valid URL")
		return
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = model.PaymentAwaiting
	}
	if req.ShippingStatus == "" {
		req.ShippingStatus = model.ShippingCreated
	}
	if !model.ValidPaymentStatus(req.PaymentStatus) {
		jsonError(w, http.StatusBadRequest, "invalid payment_status")
		return
	}
	if !model.ValidShippingStatus(req.ShippingStatus) {
		jsonError(w, http.StatusBadRequest, "invalid shipping_status")
		return
	}

	h.createOrder(w, r, model.Order{
		UserID:         req.UserID,
		ArtworkID:      req.ArtworkID,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  req.PaymentStatus,
		ShippingStatus: req.ShippingStatus,
		PaymentProof:   req.PaymentProof,
	})
}

// CreateCashApp handles POST /api/orders/cashapp. The manual-payment flow
// always starts awaiting payment regardless of caller input.
func (h *OrdersHandler) CreateCashApp(w http.ResponseWriter, r *http.Request) {
	var req createCashAppOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validURL(req.PaymentProof) {
		jsonError(w, http.StatusBadRequest, "payment_proof must be a valid URL")
		return
	}

	h.createOrder(w, r, model.Order{
		UserID:         req.UserID,
		ArtworkID:      req.ArtworkID,
		PaymentMethod:  model.PaymentMethodCashApp,
		PaymentStatus:  model.PaymentAwaiting,
		ShippingStatus: model.ShippingCreated,
		PaymentProof:   req.PaymentProof,
	})
}

// createOrder validates the references shared by both flows and inserts.
func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request, order model.Order) {
	if order.ArtworkID <= 0 {
		jsonError(w, http.StatusBadRequest, "artwork_id required")
		return
	}

	artwork, err := store.GetArtwork(r.Context(), h.DB, order.ArtworkID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if artwork == nil {
		jsonError(w, http.StatusBadRequest, "unknown artwork")
		return
	}

	if order.UserID != nil {
		user, err := store.GetUser(r.Context(), h.DB, *order.UserID)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if user == nil {
			jsonError(w, http.StatusBadRequest, "unknown user")
			return
		}
	}

	created, err := store.CreateOrder(r.Context(), h.DB, order)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	jsonResponse(w, http.StatusCreated, created)
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := store.ListOrders(r.Context(), h.DB, 100)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	jsonResponse(w, http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/orders/{id}/status.
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.PaymentStatus != nil && !model.ValidPaymentStatus(*req.PaymentStatus) {
		jsonError(w, http.StatusBadRequest, "invalid payment_status")
		return
	}
	if req.ShippingStatus != nil && !model.ValidShippingStatus(*req.ShippingStatus) {
		jsonError(w, http.StatusBadRequest, "invalid shipping_status")
		return
	}
	if req.TrackingNumber != nil && len(*req.TrackingNumber) < 2 {
		jsonError(w, http.StatusBadRequest, "tracking_number must be at least 2 characters")
		return
	}

	order, err := store.UpdateOrderStatus(r.Context(), h.DB, id, store.OrderStatusUpdate{
		PaymentStatus:  req.PaymentStatus,
		ShippingStatus: req.ShippingStatus,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update order")
		return
	}
	if order == nil {
		jsonError(w, http.StatusNotFound, "order not found")
		return
	}

	jsonResponse(w, http.StatusOK, order)
}

// Delete handles DELETE /api/orders/{id}.
func (h *OrdersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	deleted, err := store.DeleteOrder(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete order")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "order not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
