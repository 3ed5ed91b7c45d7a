package fleet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bsblogistics/dispatchboard-backend/pkg/dates"
	pkgerrors "github.com/bsblogistics/dispatchboard-backend/pkg/errors"
)

// Service defines the gantt-board operations over the entity store.
type Service interface {
	Schedule(ctx context.Context, start, end time.Time) []*Vehicle
	Refresh(ctx context.Context, req RefreshRequest) []*Vehicle
	TripDetail(ctx context.Context, tripID string) (*Trip, error)
	CreateTrip(ctx context.Context, req TripCreate) (*Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
	CreateTask(ctx context.Context, req TaskCreate) (*Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	MoveTrip(ctx context.Context, req DragPmPayload) error
	RetimeTrip(ctx context.Context, req DragTimePayload) error
	AvailableVehicleDrivers(ctx context.Context) (plates, drivers []string)
}

// ServiceParams wire the fleet service dependencies.
type ServiceParams struct {
	Store *Store

	// Default refresh window applied when a caller omits one.
	WindowBack    time.Duration
	WindowForward time.Duration

	// Now is overridable in tests.
	Now func() time.Time
}

type service struct {
	store         *Store
	windowBack    time.Duration
	windowForward time.Duration
	now           func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "fleet store required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	windowBack := params.WindowBack
	if windowBack <= 0 {
		windowBack = 24 * time.Hour
	}
	windowForward := params.WindowForward
	if windowForward <= 0 {
		windowForward = 72 * time.Hour
	}
	return &service{
		store:         params.Store,
		windowBack:    windowBack,
		windowForward: windowForward,
		now:           now,
	}, nil
}

func (s *service) Schedule(_ context.Context, start, end time.Time) []*Vehicle {
	return s.store.VehiclesInRange(start, end)
}

func (s *service) Refresh(ctx context.Context, req RefreshRequest) []*Vehicle {
	var start, end time.Time
	if req.Range != nil {
		start = req.Range.StartTime.Time
		end = req.Range.EndTime.Time
	} else {
		now := s.now()
		start = now.Add(-s.windowBack)
		end = now.Add(s.windowForward)
	}

	allowed := make(map[string]bool, len(req.VehicleIDs))
	for _, id := range req.VehicleIDs {
		allowed[id] = true
	}

	vehicles := s.store.VehiclesInRange(start, end)
	filtered := make([]*Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if allowed[v.ID] {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func (s *service) TripDetail(_ context.Context, tripID string) (*Trip, error) {
	trip, ok := s.store.TripByID(tripID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "trip not found")
	}
	return trip, nil
}

func (s *service) CreateTrip(_ context.Context, req TripCreate) (*Trip, error) {
	if !req.StartTime.Before(req.EndTime.Time) {
		return nil, pkgerrors.New(pkgerrors.CodeTimeOrder, "trip start must be before trip end")
	}

	fullLoad := req.FullLoad
	if fullLoad == "" {
		fullLoad = FullLoadNo
	}

	trip := &Trip{
		ID:        uuid.NewString(),
		VehicleID: req.VehicleID,
		DriverID:  req.DriverID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		FullLoad:  fullLoad,
		Tasks:     []*Task{},
	}
	s.store.AddTrip(trip)
	return trip, nil
}

func (s *service) DeleteTrip(_ context.Context, tripID string) error {
	if !s.store.DeleteTrip(tripID) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "trip not found")
	}
	return nil
}

func (s *service) CreateTask(_ context.Context, req TaskCreate) (*Task, error) {
	if !req.TaskType.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown task type").
			WithDetails(map[string]any{"taskType": req.TaskType})
	}

	trip, ok := s.store.TripByID(req.TripID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeTripConstraint, "trip does not exist")
	}
	if trip.FullLoad == FullLoadYes {
		return nil, pkgerrors.New(pkgerrors.CodeTripConstraint, "trip is fully loaded, no task can be added")
	}
	if len(trip.Tasks) >= MaxTasksPerTrip {
		return nil, pkgerrors.New(pkgerrors.CodeTripConstraint, "trip already holds the maximum number of tasks")
	}

	now := s.now()
	planStart := dates.At(now)
	if req.PlanStart != nil {
		planStart = *req.PlanStart
	}
	planEnd := dates.At(now)
	if req.PlanEnd != nil {
		planEnd = *req.PlanEnd
	}

	task := &Task{
		ID:          uuid.NewString(),
		TripID:      req.TripID,
		ContainerNo: req.ContainerNo,
		TaskType:    req.TaskType,
		PlanStart:   planStart,
		PlanEnd:     planEnd,
		Status:      StatusPending,
	}
	if err := s.store.AddTask(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *service) DeleteTask(_ context.Context, taskID string) error {
	if !s.store.DeleteTask(taskID) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "task not found")
	}
	return nil
}

func (s *service) MoveTrip(_ context.Context, req DragPmPayload) error {
	if !s.store.HasVehicle(req.NewPmID) {
		return pkgerrors.New(pkgerrors.CodeMissingVehicle, "target vehicle does not exist")
	}
	if !s.store.ReassignTrip(req.TripID, req.NewPmID, req.NewStartTime.Time) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "trip not found")
	}
	return nil
}

func (s *service) RetimeTrip(_ context.Context, req DragTimePayload) error {
	if !req.NewStart.Before(req.NewEnd.Time) {
		return pkgerrors.New(pkgerrors.CodeTimeOrder, "trip start must be before trip end")
	}
	if !s.store.RetimeTrip(req.TripID, req.NewStart.Time, req.NewEnd.Time) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "trip not found")
	}
	return nil
}

func (s *service) AvailableVehicleDrivers(_ context.Context) (plates, drivers []string) {
	return s.store.AvailableVehicleDrivers()
}
