// Package gantt serves the dispatch board: the vehicle schedule, trip and
// task mutations, and the drag interactions the frontend issues while a
// planner rearranges the board.
package gantt

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bsblogistics/dispatchboard-backend/api/responses"
	"github.com/bsblogistics/dispatchboard-backend/api/validators"
	"github.com/bsblogistics/dispatchboard-backend/internal/fleet"
	"github.com/bsblogistics/dispatchboard-backend/pkg/config"
	pkgerrors "github.com/bsblogistics/dispatchboard-backend/pkg/errors"
	"github.com/bsblogistics/dispatchboard-backend/pkg/logger"
)

// Vehicles returns every vehicle with the trips overlapping the requested
// window. Absent bounds fall back to the configured window around now.
func Vehicles(svc fleet.Service, schedule config.ScheduleConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, hasStart, err := validators.ParseQueryTime(r, "start")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, hasEnd, err := validators.ParseQueryTime(r, "end")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		now := time.Now()
		if !hasStart {
			start = now.Add(-schedule.WindowBack)
		}
		if !hasEnd {
			end = now.Add(schedule.WindowForward)
		}
		if !start.Before(end) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeTimeOrder, "window start must be before window end"))
			return
		}

		responses.WriteSuccess(w, svc.Schedule(r.Context(), start, end))
	}
}

// Refresh re-queries the schedule for a named subset of vehicles, typically
// after a drag settles.
func Refresh(svc fleet.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fleet.RefreshRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if req.Range != nil && !req.Range.StartTime.Before(req.Range.EndTime.Time) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeTimeOrder, "window start must be before window end"))
			return
		}
		responses.WriteSuccess(w, svc.Refresh(r.Context(), req))
	}
}

func TripDetail(svc fleet.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripID := strings.TrimSpace(chi.URLParam(r, "tripId"))
		if tripID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "trip id is required"))
			return
		}

		ctx := logg.WithTripID(r.Context(), tripID)
		trip, err := svc.TripDetail(ctx, tripID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, trip)
	}
}

func CreateTrip(svc fleet.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fleet.TripCreate
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithVehicleID(r.Context(), req.VehicleID)
		trip, err := svc.CreateTrip(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		logg.Info(logg.WithTripID(ctx, trip.ID), "trip.created")
		responses.WriteSuccessStatus(w, http.StatusCreated, trip)
	}
}

func DeleteTrip(svc fleet.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripID := strings.TrimSpace(chi.URLParam(r, "tripId"))
		if tripID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "trip id is required"))
			return
		}

		ctx := logg.WithTripID(r.Context(), tripID)
		if err := svc.DeleteTrip(ctx, tripID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		logg.Info(ctx, "trip.deleted")
		responses.WriteSuccess(w, map[string]string{"id": tripID})
	}
}

func CreateTask(svc fleet.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fleet.TaskCreate
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithTripID(r.Context(), req.TripID)
		task, err := svc.CreateTask(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, task)
	}
}

func DeleteTask(svc fleet.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID := strings.TrimSpace(chi.URLParam(r, "taskId"))
		if taskID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "task id is required"))
			return
		}

		if err := svc.DeleteTask(r.Context(), taskID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": taskID})
	}
}

// DragPm handles a trip dropped onto another prime mover row.
func DragPm(svc fleet.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fleet.DragPmPayload
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithFields(r.Context(), map[string]any{
			"trip_id":    req.TripID,
			"vehicle_id": req.NewPmID,
		})
		if err := svc.MoveTrip(ctx, req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		logg.Info(ctx, "trip.moved")
		responses.WriteSuccess(w, map[string]string{"id": req.TripID})
	}
}

// DragTime handles a trip stretched or shifted along the time axis.
func DragTime(svc fleet.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fleet.DragTimePayload
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithTripID(r.Context(), req.TripID)
		if err := svc.RetimeTrip(ctx, req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		logg.Info(ctx, "trip.retimed")
		responses.WriteSuccess(w, map[string]string{"id": req.TripID})
	}
}

// VehicleDriverList returns the catalog plates and drivers not yet on the
// board, for the add-vehicle dialog.
func VehicleDriverList(svc fleet.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plates, drivers := svc.AvailableVehicleDrivers(r.Context())
		responses.WriteSuccess(w, map[string][]string{
			"plateNumbers": plates,
			"driverIds":    drivers,
		})
	}
}
