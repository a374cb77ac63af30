package routes

import (
	"net/http"

	"github.com/merapruthvi/greenpulse/backend/internal/api/handlers"
	"github.com/merapruthvi/greenpulse/backend/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	userHandler       *handlers.UserHandler
	resourceHandler   *handlers.ResourceHandler
	navigationHandler *handlers.NavigationHandler
	issueHandler      *handlers.IssueHandler
	wasteHandler      *handlers.WasteHandler
	irrigationHandler *handlers.IrrigationHandler
	weatherHandler    *handlers.WeatherHandler
	chatHandler       *handlers.ChatHandler
	analyticsHandler  *handlers.AnalyticsHandler
}

// NewRouter creates a new router
func NewRouter(
	userHandler *handlers.UserHandler,
	resourceHandler *handlers.ResourceHandler,
	navigationHandler *handlers.NavigationHandler,
	issueHandler *handlers.IssueHandler,
	wasteHandler *handlers.WasteHandler,
	irrigationHandler *handlers.IrrigationHandler,
	weatherHandler *handlers.WeatherHandler,
	chatHandler *handlers.ChatHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		userHandler:       userHandler,
		resourceHandler:   resourceHandler,
		navigationHandler: navigationHandler,
		issueHandler:      issueHandler,
		wasteHandler:      wasteHandler,
		irrigationHandler: irrigationHandler,
		weatherHandler:    weatherHandler,
		chatHandler:       chatHandler,
		analyticsHandler:  analyticsHandler,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// User endpoints
	r.mux.HandleFunc("GET /api/user/stats", r.userHandler.Stats)
	r.mux.HandleFunc("PATCH /api/user/profile", r.userHandler.UpdateProfile)
	r.mux.HandleFunc("GET /api/leaderboard", r.userHandler.Leaderboard)

	// Resource tracking endpoints
	r.mux.HandleFunc("POST /api/resources", r.resourceHandler.Create)
	r.mux.HandleFunc("GET /api/resources", r.resourceHandler.List)

	// Navigation endpoints
	r.mux.HandleFunc("POST /api/navigation/directions", r.navigationHandler.GetDirections)
	r.mux.HandleFunc("POST /api/navigation", r.navigationHandler.LogRoute)
	r.mux.HandleFunc("GET /api/navigation", r.navigationHandler.List)

	// Community issue endpoints
	r.mux.HandleFunc("POST /api/issues", r.issueHandler.Create)
	r.mux.HandleFunc("GET /api/issues", r.issueHandler.List)
	r.mux.HandleFunc("GET /api/issues/all", r.issueHandler.ListAll)
	r.mux.HandleFunc("PATCH /api/issues/{id}/status", r.issueHandler.UpdateStatus)

	// Waste classification endpoints
	r.mux.HandleFunc("POST /api/waste/classify", r.wasteHandler.Classify)
	r.mux.HandleFunc("GET /api/waste", r.wasteHandler.List)

	// Irrigation endpoints
	r.mux.HandleFunc("POST /api/irrigation", r.irrigationHandler.Create)
	r.mux.HandleFunc("GET /api/irrigation", r.irrigationHandler.List)

	// Weather endpoint
	r.mux.HandleFunc("GET /api/weather", r.weatherHandler.Get)

	// Assistant endpoint
	r.mux.HandleFunc("POST /api/chat", r.chatHandler.Chat)

	// Analytics endpoint
	r.mux.HandleFunc("GET /api/analytics", r.analyticsHandler.Get)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
