package containers

import (
	"github.com/bsblogistics/dispatchboard-backend/internal/fleet"
	"github.com/bsblogistics/dispatchboard-backend/pkg/dates"
)

// DateRequest carries the calendar date the exception queries run against.
type DateRequest struct {
	QueryDate string `json:"query_date" validate:"required"`
}

// PlanToTaskRequest converts a container record into a schedulable task,
// optionally targeted at an existing trip.
type PlanToTaskRequest struct {
	TripID      string          `json:"tripId,omitempty"`
	VehicleID   string          `json:"vehicleId,omitempty"`
	ContainerNo string          `json:"containerNo" validate:"required"`
	TaskType    fleet.TaskType  `json:"taskType" validate:"required"`
	PlanStart   *dates.Time     `json:"planStart,omitempty"`
	PlanEnd     *dates.Time     `json:"planEnd,omitempty"`
}
