package http

import (
	"net/http"

	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	patientHandler     *handler.PatientHandler
	dentistHandler     *handler.DentistHandler
	serviceHandler     *handler.ServiceHandler
	appointmentHandler *handler.AppointmentHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	dentistHandler *handler.DentistHandler,
	serviceHandler *handler.ServiceHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		patientHandler:     patientHandler,
		dentistHandler:     dentistHandler,
		serviceHandler:     serviceHandler,
		appointmentHandler: appointmentHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Appointment routes (any authenticated user)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/available-slots", r.appointmentHandler.GetAvailableSlots).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Patient records: reads for clinical roles, writes for front desk
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireClinical)
	patients.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	patientAdmin := api.PathPrefix("/patients").Subrouter()
	patientAdmin.Use(r.authMiddleware.Authenticate)
	patientAdmin.Use(middleware.RequireStaff)
	patientAdmin.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patientAdmin.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patientAdmin.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Dentist directory: readable by anyone logged in, managed by front desk
	dentists := api.PathPrefix("/dentists").Subrouter()
	dentists.Use(r.authMiddleware.Authenticate)
	dentists.HandleFunc("", r.dentistHandler.GetAllDentists).Methods(http.MethodGet)
	dentists.HandleFunc("/{id}", r.dentistHandler.GetDentist).Methods(http.MethodGet)

	dentistAdmin := api.PathPrefix("/dentists").Subrouter()
	dentistAdmin.Use(r.authMiddleware.Authenticate)
	dentistAdmin.Use(middleware.RequireStaff)
	dentistAdmin.HandleFunc("", r.dentistHandler.CreateDentist).Methods(http.MethodPost)
	dentistAdmin.HandleFunc("/{id}", r.dentistHandler.UpdateDentist).Methods(http.MethodPut)
	dentistAdmin.HandleFunc("/{id}", r.dentistHandler.DeleteDentist).Methods(http.MethodDelete)

	// Service catalog: readable by anyone logged in, managed by front desk
	services := api.PathPrefix("/services").Subrouter()
	services.Use(r.authMiddleware.Authenticate)
	services.HandleFunc("", r.serviceHandler.GetAllServices).Methods(http.MethodGet)
	services.HandleFunc("/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)

	serviceAdmin := api.PathPrefix("/services").Subrouter()
	serviceAdmin.Use(r.authMiddleware.Authenticate)
	serviceAdmin.Use(middleware.RequireStaff)
	serviceAdmin.HandleFunc("", r.serviceHandler.CreateService).Methods(http.MethodPost)
	serviceAdmin.HandleFunc("/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	serviceAdmin.HandleFunc("/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)

	// User management (admin only)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireAdmin)
	users.HandleFunc("", r.userHandler.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	users.HandleFunc("/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Audit trail (admin only)
	audit := api.PathPrefix("/audit-logs").Subrouter()
	audit.Use(r.authMiddleware.Authenticate)
	audit.Use(middleware.RequireAdmin)
	audit.HandleFunc("", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
