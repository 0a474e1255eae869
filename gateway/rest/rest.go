// Package rest provides the REST/JSON surface of the gateway. Each handler
// validates minimal shape, invokes exactly one backend adapter operation,
// and maps the adapter's normalized error kind onto an HTTP status code.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mealgrid/gateway/errors"
	"github.com/mealgrid/gateway/gateway"
	"github.com/mealgrid/gateway/rpc/orderpb"
)

// maxRequestSize limits POST bodies to 1MB.
const maxRequestSize = 1 << 20

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gateway_rest_requests_total",
	Help: "REST requests handled, by route and status code.",
}, []string{"route", "status"})

// Handler serves the REST routes over the Order backend.
type Handler struct {
	orders gateway.OrderBackend
	logger *slog.Logger
}

// NewHandler creates the REST surface handler.
func NewHandler(orders gateway.OrderBackend, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		orders: orders,
		logger: logger.With("component", "rest-surface"),
	}
}

// RegisterRoutes registers the REST routes with the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.GetOrder)
	})
}

// ListOrders handles GET /orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if h.orders.Degraded() {
		h.writeError(w, "/orders", http.StatusServiceUnavailable, "order service unavailable")
		return
	}

	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.writeClassified(w, "/orders", err)
		return
	}
	h.writeJSON(w, "/orders", http.StatusOK, orders)
}

// GetOrder handles GET /orders/{id}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	if h.orders.Degraded() {
		h.writeError(w, "/orders/{id}", http.StatusServiceUnavailable, "order service unavailable")
		return
	}

	order, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeClassified(w, "/orders/{id}", err, errors.KindNotFound)
		return
	}
	h.writeJSON(w, "/orders/{id}", http.StatusOK, order)
}

// CreateOrder handles POST /orders.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if h.orders.Degraded() {
		h.writeError(w, "/orders", http.StatusServiceUnavailable, "order service unavailable")
		return
	}

	defer r.Body.Close()
	var req orderpb.CreateOrderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize))
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, "/orders", http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), &req)
	if err != nil {
		h.writeClassified(w, "/orders", err, errors.KindInvalid)
		return
	}
	h.writeJSON(w, "/orders", http.StatusCreated, order)
}

// writeClassified maps a normalized adapter error onto the route's status
// code semantics. Unavailable is 503 on every route; the other kinds map
// to a non-500 status only where the route's contract names them, so a
// NotFound leaking out of the list call still reads as an internal error.
// Surfaces never inspect transport details, only the kind.
func (h *Handler) writeClassified(w http.ResponseWriter, route string, err error, allowed ...errors.Kind) {
	status := http.StatusInternalServerError
	message := "internal server error"

	kind := errors.KindOf(err)
	switch {
	case kind == errors.KindUnavailable:
		status = http.StatusServiceUnavailable
		message = "order service unavailable"
	case kind == errors.KindNotFound && kindAllowed(kind, allowed):
		status = http.StatusNotFound
		message = "order not found"
	case kind == errors.KindInvalid && kindAllowed(kind, allowed):
		status = http.StatusBadRequest
		message = "invalid request"
	}

	h.logger.Debug("request failed", "route", route, "status", status, "error", err)
	h.writeError(w, route, status, message)
}

func kindAllowed(kind errors.Kind, allowed []errors.Kind) bool {
	for _, k := range allowed {
		if k == kind {
			return true
		}
	}
	return false
}

func (h *Handler) writeJSON(w http.ResponseWriter, route string, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response write failed", "route", route, "error", err)
	}
	requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (h *Handler) writeError(w http.ResponseWriter, route string, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]any{
		"error":  message,
		"status": status,
	}
	data, _ := json.Marshal(response)
	_, _ = w.Write(data)
	requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
