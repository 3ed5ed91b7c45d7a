package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bsblogistics/dispatchboard-backend/api/controllers"
	ganttcontrollers "github.com/bsblogistics/dispatchboard-backend/api/controllers/gantt"
	ordercontrollers "github.com/bsblogistics/dispatchboard-backend/api/controllers/orders"
	"github.com/bsblogistics/dispatchboard-backend/api/middleware"
	"github.com/bsblogistics/dispatchboard-backend/internal/containers"
	"github.com/bsblogistics/dispatchboard-backend/internal/fleet"
	"github.com/bsblogistics/dispatchboard-backend/pkg/config"
	"github.com/bsblogistics/dispatchboard-backend/pkg/logger"
	"github.com/bsblogistics/dispatchboard-backend/pkg/metrics"
)

// RouterParams carries everything the HTTP surface needs.
type RouterParams struct {
	Config     *config.Config
	Logger     *logger.Logger
	Fleet      fleet.Service
	Containers containers.Service

	// Registry backs /metrics; nil disables request metrics.
	Registry *prometheus.Registry
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	var reqMetrics *metrics.RequestMetrics
	if params.Registry != nil {
		reqMetrics = metrics.NewRequestMetrics(params.Registry)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(reqMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if params.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/gantt", func(r chi.Router) {
		r.Get("/vehicles", ganttcontrollers.Vehicles(params.Fleet, cfg.Schedule, logg))
		r.Post("/vehicles/refresh", ganttcontrollers.Refresh(params.Fleet, logg))
		r.Get("/trip/{tripId}", ganttcontrollers.TripDetail(params.Fleet, logg))
		r.Post("/trip", ganttcontrollers.CreateTrip(params.Fleet, logg))
		r.Delete("/trip/{tripId}", ganttcontrollers.DeleteTrip(params.Fleet, logg))
		r.Post("/task", ganttcontrollers.CreateTask(params.Fleet, logg))
		r.Delete("/task/{taskId}", ganttcontrollers.DeleteTask(params.Fleet, logg))
		r.Post("/drag/pm", ganttcontrollers.DragPm(params.Fleet, logg))
		r.Post("/drag/time", ganttcontrollers.DragTime(params.Fleet, logg))
		r.Get("/vehicle-driver-list", ganttcontrollers.VehicleDriverList(params.Fleet, logg))
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/containers", ordercontrollers.List(params.Containers, logg))
		r.Get("/container/{ctnNumber}", ordercontrollers.Detail(params.Containers, logg))
		r.Post("/last-pickup", ordercontrollers.LastPickup(params.Containers, logg))
		r.Post("/last-dehire", ordercontrollers.LastDehire(params.Containers, logg))
		r.Post("/today-deliver", ordercontrollers.TodayDeliver(params.Containers, logg))
		r.Post("/plan-to-task", ordercontrollers.PlanToTask(params.Containers, logg))
	})

	return r
}
