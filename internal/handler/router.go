package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/zhouzirui/roster/backend/internal/handler/day"
	"github.com/zhouzirui/roster/backend/internal/handler/person"
	middlewarePkg "github.com/zhouzirui/roster/backend/internal/middleware"
	personModel "github.com/zhouzirui/roster/backend/internal/model/person"
	"github.com/zhouzirui/roster/backend/pkg/utils"
)

// Options configures optional router features.
type Options struct {
	// Metrics, when set, instruments every route and is served at MetricsPath.
	Metrics     *middlewarePkg.Metrics
	MetricsPath string
}

// NewRouter wires HTTP routes to the person directory.
func NewRouter(people personModel.Store, logger *logrus.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewarePkg.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	// Outside Recoverer so recovered panics are counted as 500s.
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	personHandler := person.New(people, logger)
	dayHandler := day.New()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, opts.Metrics.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		personHandler.RegisterRoutes(api)
		dayHandler.RegisterRoutes(api)
	})

	return r
}
