package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toolkeeper-backend/internal/security"
	"toolkeeper-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth         service.AuthService
	Tool         service.ToolService
	Booking      service.BookingService
	Maintenance  service.MaintenanceService
	SparePart    service.SparePartService
	Notification service.NotificationService
	Tokens       security.TokenManager
}

// NewRouter wires all routes. Everything under /api/v1 except the auth
// endpoints requires a valid access token; mutating inventory routes are
// additionally restricted to admins and managers.
func NewRouter(svcs Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(svcs.Tokens))

	toolHandler := NewToolHandler(svcs.Tool)
	authed.HandleFunc("/tools", toolHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/tools/{id:[0-9]+}", toolHandler.Get).Methods(http.MethodGet)

	bookingHandler := NewBookingHandler(svcs.Booking)
	authed.HandleFunc("/tools/{id:[0-9]+}/checkout", bookingHandler.Checkout).Methods(http.MethodPost)
	authed.HandleFunc("/tools/{id:[0-9]+}/checkin", bookingHandler.Checkin).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}/cancel", bookingHandler.Cancel).Methods(http.MethodPost)

	noteHandler := NewNotificationHandler(svcs.Notification)
	authed.HandleFunc("/notifications", noteHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", noteHandler.MarkAsRead).Methods(http.MethodPost)

	privileged := authed.NewRoute().Subrouter()
	privileged.Use(RequirePrivileged)

	privileged.HandleFunc("/tools", toolHandler.Create).Methods(http.MethodPost)
	privileged.HandleFunc("/tools/{id:[0-9]+}", toolHandler.Update).Methods(http.MethodPut)
	privileged.HandleFunc("/tools/{id:[0-9]+}", toolHandler.Delete).Methods(http.MethodDelete)

	privileged.HandleFunc("/bookings/{id:[0-9]+}/approve", bookingHandler.Approve).Methods(http.MethodPost)
	privileged.HandleFunc("/bookings/{id:[0-9]+}/reject", bookingHandler.Reject).Methods(http.MethodPost)

	maintHandler := NewMaintenanceHandler(svcs.Maintenance)
	privileged.HandleFunc("/maintenances", maintHandler.Create).Methods(http.MethodPost)
	privileged.HandleFunc("/maintenances", maintHandler.List).Methods(http.MethodGet)
	privileged.HandleFunc("/maintenances/{id:[0-9]+}", maintHandler.Get).Methods(http.MethodGet)
	privileged.HandleFunc("/maintenances/{id:[0-9]+}", maintHandler.Update).Methods(http.MethodPut)
	privileged.HandleFunc("/maintenances/{id:[0-9]+}/parts", maintHandler.ConsumePart).Methods(http.MethodPost)

	partHandler := NewSparePartHandler(svcs.SparePart)
	privileged.HandleFunc("/spare-parts", partHandler.Create).Methods(http.MethodPost)
	privileged.HandleFunc("/spare-parts", partHandler.List).Methods(http.MethodGet)
	privileged.HandleFunc("/spare-parts/{id:[0-9]+}", partHandler.Get).Methods(http.MethodGet)
	privileged.HandleFunc("/spare-parts/{id:[0-9]+}", partHandler.Update).Methods(http.MethodPut)

	return r
}
