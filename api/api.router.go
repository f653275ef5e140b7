package api

import (
	"net/http"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/airsentry/hub/api/resources"
	"github.com/airsentry/hub/internal/hubservice"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
	metrics   http.Handler
}

func NewRouter(svc *hubservice.HubService, metrics http.Handler) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
		metrics:   metrics,
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.handleHealth).Methods(http.MethodGet)

	// Readings and charting
	api.HandleFunc("/readings", r.resources.Readings.ListReadings).Methods(http.MethodGet)
	api.HandleFunc("/readings/latest", r.resources.Readings.GetLatestReading).Methods(http.MethodGet)
	api.HandleFunc("/status", r.resources.Readings.GetStatus).Methods(http.MethodGet)
	api.HandleFunc("/series", r.resources.Readings.GetSeries).Methods(http.MethodGet)
	api.HandleFunc("/series/field", r.resources.Readings.SelectField).Methods(http.MethodPut)
	api.HandleFunc("/refresh", r.resources.Readings.Refresh).Methods(http.MethodPost)

	// Peripheral controls
	api.HandleFunc("/fan/{action}", r.resources.Controls.SetFan).Methods(http.MethodPost)
	api.HandleFunc("/buzzer/{action}", r.resources.Controls.SetBuzzer).Methods(http.MethodPost)

	// Prometheus exposition
	r.router.Handle("/metrics", r.metrics).Methods(http.MethodGet)
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
