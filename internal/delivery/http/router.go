package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clinisalud/portal-backend/internal/delivery/http/handler"
	"github.com/clinisalud/portal-backend/internal/delivery/http/middleware"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	directoryHandler *handler.DirectoryHandler
	scheduleHandler  *handler.ScheduleHandler
	bookingHandler   *handler.BookingHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	directoryHandler *handler.DirectoryHandler,
	scheduleHandler *handler.ScheduleHandler,
	bookingHandler *handler.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		profileHandler:   profileHandler,
		directoryHandler: directoryHandler,
		scheduleHandler:  scheduleHandler,
		bookingHandler:   bookingHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Profile routes (protected)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("", r.profileHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("", r.profileHandler.UpdateProfile).Methods(http.MethodPut)

	// Directory and schedule routes (public)
	api.HandleFunc("/specialties", r.directoryHandler.ListSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}/specialists", r.directoryHandler.ListSpecialistsBySpecialty).Methods(http.MethodGet)
	api.HandleFunc("/specialists", r.directoryHandler.ListSpecialists).Methods(http.MethodGet)
	api.HandleFunc("/specialists/{id}", r.directoryHandler.GetSpecialist).Methods(http.MethodGet)
	api.HandleFunc("/specialists/{id}/availability", r.scheduleHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/specialists/{id}/slots", r.scheduleHandler.ListSlots).Methods(http.MethodGet)

	// Appointment routes (protected - patients only)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Use(middleware.RequirePatient)
	appointments.HandleFunc("", r.bookingHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("", r.bookingHandler.GetMyAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/history", r.bookingHandler.GetAppointmentHistory).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/cancel", r.bookingHandler.CancelAppointment).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
