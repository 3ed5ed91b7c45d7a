package fleet

import "github.com/bsblogistics/dispatchboard-backend/pkg/dates"

// TaskCreate is the payload for adding a stop to an existing trip.
type TaskCreate struct {
	TripID      string      `json:"tripId" validate:"required"`
	VehicleID   string      `json:"vehicleId,omitempty"`
	ContainerNo string      `json:"containerNo,omitempty"`
	TaskType    TaskType    `json:"taskType" validate:"required"`
	PlanStart   *dates.Time `json:"planStart,omitempty"`
	PlanEnd     *dates.Time `json:"planEnd,omitempty"`
}

// TripCreate is the payload for explicit trip creation from the gantt board.
type TripCreate struct {
	VehicleID string     `json:"vehicleId" validate:"required"`
	DriverID  *string    `json:"driverId,omitempty"`
	StartTime dates.Time `json:"startTime" validate:"required"`
	EndTime   dates.Time `json:"endTime" validate:"required"`
	FullLoad  string     `json:"fullLoad,omitempty" validate:"omitempty,oneof=Y N"`
}

// DragPmPayload moves a trip onto another prime mover, anchored at a new
// start time (duration is preserved).
type DragPmPayload struct {
	TripID       string     `json:"tripId" validate:"required"`
	NewPmID      string     `json:"newPmId" validate:"required"`
	NewStartTime dates.Time `json:"newStartTime" validate:"required"`
}

// DragTimePayload rewrites both trip endpoints.
type DragTimePayload struct {
	TripID   string     `json:"tripId" validate:"required"`
	NewStart dates.Time `json:"newStart" validate:"required"`
	NewEnd   dates.Time `json:"newEnd" validate:"required"`
}

// RefreshRequest narrows the schedule query to an allow-list of vehicles,
// optionally over a caller-supplied window.
type RefreshRequest struct {
	VehicleIDs []string   `json:"vehicleIds" validate:"required"`
	Range      *TimeRange `json:"range,omitempty"`
}

type TimeRange struct {
	StartTime dates.Time `json:"startTime" validate:"required"`
	EndTime   dates.Time `json:"endTime" validate:"required"`
}
