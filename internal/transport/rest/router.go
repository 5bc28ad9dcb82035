package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/transport/middleware"
)

// Handlers groups the endpoint handlers served by the router.
type Handlers struct {
	Health     *HealthHandler
	Texts      *TextHandler
	Recordings *RecordingHandler
	Handles    *HandleHandler
}

// RouterOptions configures the cross-cutting middleware.
type RouterOptions struct {
	CORS             config.CORSConfig
	Limiter          *middleware.RateLimiter // nil disables upload throttling
	UploadsPerMinute int
}

// NewRouter wires every endpoint behind the shared middleware chain.
func NewRouter(h Handlers, opts RouterOptions, logger *slog.Logger) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	router.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/texts", h.Texts.List).Methods(http.MethodGet)
	api.HandleFunc("/texts", h.Texts.Create).Methods(http.MethodPost)
	api.HandleFunc("/texts/{id}", h.Texts.Get).Methods(http.MethodGet)
	api.HandleFunc("/texts/{id}", h.Texts.Update).Methods(http.MethodPut)
	api.HandleFunc("/texts/{id}", h.Texts.Delete).Methods(http.MethodDelete)

	var upload http.Handler = http.HandlerFunc(h.Recordings.Upload)
	if opts.Limiter != nil {
		upload = opts.Limiter.Limit(opts.UploadsPerMinute)(upload)
	}

	api.HandleFunc("/recordings", h.Recordings.List).Methods(http.MethodGet)
	api.Handle("/recordings", upload).Methods(http.MethodPost)
	api.HandleFunc("/recordings/by-text/{textId}", h.Recordings.ByText).Methods(http.MethodGet)
	api.HandleFunc("/recordings/{id}", h.Recordings.Get).Methods(http.MethodGet)
	api.HandleFunc("/recordings/{id}", h.Recordings.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/recordings/{id}/audio", h.Recordings.Audio).Methods(http.MethodGet)
	api.HandleFunc("/recordings/{id}/handles", h.Recordings.MintHandle).Methods(http.MethodPost)

	api.HandleFunc("/handles/{handle}", h.Handles.Stream).Methods(http.MethodGet, http.MethodHead)
	api.HandleFunc("/handles/{handle}", h.Handles.Revoke).Methods(http.MethodDelete)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no such endpoint")
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	// Subrouters do not inherit these from the parent.
	for _, r := range []*mux.Router{router, api} {
		r.NotFoundHandler = notFound
		r.MethodNotAllowedHandler = methodNotAllowed
	}

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(opts.CORS),
	)
	return chain(router)
}
