// Package orders serves the container order book: the searchable list, the
// per-container detail, the daily exception reports and plan-to-task
// conversion.
package orders

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bsblogistics/dispatchboard-backend/api/responses"
	"github.com/bsblogistics/dispatchboard-backend/api/validators"
	"github.com/bsblogistics/dispatchboard-backend/internal/containers"
	"github.com/bsblogistics/dispatchboard-backend/pkg/dates"
	pkgerrors "github.com/bsblogistics/dispatchboard-backend/pkg/errors"
	"github.com/bsblogistics/dispatchboard-backend/pkg/logger"
)

// List returns containers filtered by the board's search box and dropdowns.
func List(svc containers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := containers.ListFilters{
			Search:          validators.QueryString(r, "search"),
			LogisticsStatus: validators.QueryString(r, "logisticsStatus"),
			DeliverType:     validators.QueryString(r, "deliverType"),
			Terminal:        validators.QueryString(r, "terminal"),
		}
		responses.WriteSuccess(w, svc.List(r.Context(), filters))
	}
}

func Detail(svc containers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctnNumber := strings.TrimSpace(chi.URLParam(r, "ctnNumber"))
		if ctnNumber == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "container number is required"))
			return
		}

		ctx := logg.WithContainerNo(r.Context(), ctnNumber)
		c, err := svc.Detail(ctx, ctnNumber)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, c)
	}
}

// LastPickup reports containers whose free-storage window closes on the query
// date without a timely pickup plan.
func LastPickup(svc containers.Service, logg *logger.Logger) http.HandlerFunc {
	return exceptionReport(logg, func(r *http.Request, svc containers.Service, day time.Time) []*containers.Container {
		return svc.OverduePickups(r.Context(), day)
	}, svc)
}

// LastDehire reports containers whose detention window closes on the query
// date without a timely dehire plan.
func LastDehire(svc containers.Service, logg *logger.Logger) http.HandlerFunc {
	return exceptionReport(logg, func(r *http.Request, svc containers.Service, day time.Time) []*containers.Container {
		return svc.OverdueDehires(r.Context(), day)
	}, svc)
}

// TodayDeliver reports containers requested for delivery on the query date
// whose plan is missing or on a different date.
func TodayDeliver(svc containers.Service, logg *logger.Logger) http.HandlerFunc {
	return exceptionReport(logg, func(r *http.Request, svc containers.Service, day time.Time) []*containers.Container {
		return svc.DeliveryMismatches(r.Context(), day)
	}, svc)
}

func exceptionReport(logg *logger.Logger, query func(*http.Request, containers.Service, time.Time) []*containers.Container, svc containers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req containers.DateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		day, ok := dates.ParseDate(req.QueryDate)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "query date is not a recognizable date").
					WithDetails(map[string]any{"query_date": req.QueryDate}))
			return
		}

		responses.WriteSuccess(w, query(r, svc, day))
	}
}

// PlanToTask converts a container into a task shell the planner can place on
// the board. Nothing is persisted here.
func PlanToTask(svc containers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req containers.PlanToTaskRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithContainerNo(r.Context(), req.ContainerNo)
		task, err := svc.PlanToTask(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, task)
	}
}
