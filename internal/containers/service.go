package containers

import (
	"context"
	"strings"
	"time"

	"github.com/bsblogistics/dispatchboard-backend/internal/fleet"
	"github.com/bsblogistics/dispatchboard-backend/pkg/dates"
	pkgerrors "github.com/bsblogistics/dispatchboard-backend/pkg/errors"
)

// TripChecker is the slice of the fleet store plan-to-task needs to validate
// a target trip.
type TripChecker interface {
	TripByID(id string) (*fleet.Trip, bool)
}

// Service exposes container reads, the operational exception queries and
// container-to-task conversion.
type Service interface {
	List(ctx context.Context, filters ListFilters) []*Container
	Detail(ctx context.Context, ctnNumber string) (*Container, error)
	OverduePickups(ctx context.Context, day time.Time) []*Container
	OverdueDehires(ctx context.Context, day time.Time) []*Container
	DeliveryMismatches(ctx context.Context, day time.Time) []*Container
	PlanToTask(ctx context.Context, req PlanToTaskRequest) (*fleet.Task, error)
}

// ServiceParams wire the containers service dependencies.
type ServiceParams struct {
	Repo  *Repository
	Trips TripChecker

	// Now is overridable in tests.
	Now func() time.Time
}

type service struct {
	repo  *Repository
	trips TripChecker
	now   func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "containers repository required")
	}
	if params.Trips == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "trip checker required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, trips: params.Trips, now: now}, nil
}

func (s *service) List(_ context.Context, filters ListFilters) []*Container {
	return s.repo.List(filters)
}

func (s *service) Detail(_ context.Context, ctnNumber string) (*Container, error) {
	c, ok := s.repo.FindByNumber(ctnNumber)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "container not found")
	}
	return c, nil
}

// OverduePickups flags containers whose free-storage window expires on the
// given day while pickup is unplanned or planned past the deadline.
//
// The plan-vs-deadline comparison is a raw string compare, not a parsed-date
// compare: all well-formed values share the fixed-width canonical layout, so
// lexicographic order coincides with chronological order, and keeping the raw
// compare pins behavior for malformed upstream data.
func (s *service) OverduePickups(_ context.Context, day time.Time) []*Container {
	out := []*Container{}
	for _, c := range s.repo.All() {
		deadline, ok := dates.ParseDate(c.LastFree)
		if !ok || !dates.SameDay(deadline, day) {
			continue
		}
		if strings.TrimSpace(c.PlanPickUpDate) == "" || c.PlanPickUpDate > c.LastFree {
			out = append(out, c)
		}
	}
	return out
}

// OverdueDehires is the same rule as OverduePickups, applied to the detention
// deadline for returning the empty container.
func (s *service) OverdueDehires(_ context.Context, day time.Time) []*Container {
	out := []*Container{}
	for _, c := range s.repo.All() {
		deadline, ok := dates.ParseDate(c.LastDention)
		if !ok || !dates.SameDay(deadline, day) {
			continue
		}
		if strings.TrimSpace(c.PlanDehireDate) == "" || c.PlanDehireDate > c.LastDention {
			out = append(out, c)
		}
	}
	return out
}

// DeliveryMismatches flags containers the customer asked to have delivered on
// the given day that are unplanned or planned for a different date.
func (s *service) DeliveryMismatches(_ context.Context, day time.Time) []*Container {
	out := []*Container{}
	for _, c := range s.repo.All() {
		requested, ok := dates.ParseDate(c.RequestDeliverDate)
		if !ok || !dates.SameDay(requested, day) {
			continue
		}
		if strings.TrimSpace(c.PlanDeliverDate) == "" || c.PlanDeliverDate != c.RequestDeliverDate {
			out = append(out, c)
		}
	}
	return out
}

// PlanToTask materializes a task from a container. When a target trip is
// named it must exist, not be fully loaded and have room for another task.
// The task is returned without being stored; the caller submits it through
// task creation once the planner confirms placement.
func (s *service) PlanToTask(_ context.Context, req PlanToTaskRequest) (*fleet.Task, error) {
	if !req.TaskType.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown task type").
			WithDetails(map[string]any{"taskType": req.TaskType})
	}

	c, ok := s.repo.FindByNumber(req.ContainerNo)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "container not found")
	}

	if req.TripID != "" {
		trip, ok := s.trips.TripByID(req.TripID)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeTripConstraint, "trip does not exist")
		}
		if trip.FullLoad == fleet.FullLoadYes {
			return nil, pkgerrors.New(pkgerrors.CodeTripConstraint, "trip is fully loaded, no task can be added")
		}
		if len(trip.Tasks) >= fleet.MaxTasksPerTrip {
			return nil, pkgerrors.New(pkgerrors.CodeTripConstraint, "trip already holds the maximum number of tasks")
		}
	}

	var planStart, planEnd *time.Time
	if req.PlanStart != nil {
		planStart = &req.PlanStart.Time
	}
	if req.PlanEnd != nil {
		planEnd = &req.PlanEnd.Time
	}

	return MaterializeTask(c, req.TaskType, req.TripID, planStart, planEnd, s.now()), nil
}
