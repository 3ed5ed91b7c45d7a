package fleet

import (
	"time"

	"github.com/bsblogistics/dispatchboard-backend/pkg/dates"
)

// TaskType enumerates the stop kinds a trip can carry. Wire spellings follow
// the upstream planning system verbatim, including the "Drving" typo.
type TaskType string

const (
	TaskYardFull  TaskType = "Yard(F)"
	TaskClient    TaskType = "Client"
	TaskYardEmpty TaskType = "Yard(E)"
	TaskEmptyPark TaskType = "Empty Park"
	TaskDriving   TaskType = "Drving"
	TaskLifting   TaskType = "Lifting"
	TaskWaiting   TaskType = "Waiting"
	TaskOther     TaskType = "Other"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskYardFull, TaskClient, TaskYardEmpty, TaskEmptyPark,
		TaskDriving, TaskLifting, TaskWaiting, TaskOther:
		return true
	}
	return false
}

type TaskStatus string

const (
	StatusPending       TaskStatus = "pending"
	StatusOngoing       TaskStatus = "ongoing"
	StatusCompleted     TaskStatus = "completed"
	StatusToBeConfirmed TaskStatus = "tbc"
)

// Full-load markers carried on trips ('Y' blocks further task assignment).
const (
	FullLoadYes = "Y"
	FullLoadNo  = "N"
)

// MaxTasksPerTrip caps the stops a single trip may carry.
const MaxTasksPerTrip = 2

type Task struct {
	ID              string     `json:"id"`
	TripID          string     `json:"tripId"`
	ContainerNo     string     `json:"containerNo,omitempty"`
	TaskType        TaskType   `json:"taskType"`
	PlanStart       dates.Time `json:"planStart"`
	PlanEnd         dates.Time `json:"planEnd"`
	StartAddress    string     `json:"startAddress"`
	EndAddress      string     `json:"endAddress"`
	Status          TaskStatus `json:"status"`
	DriverID        *string    `json:"driverId,omitempty"`
	VehiclePmID     *string    `json:"vehiclePmId,omitempty"`
	VehicleTailID   *string    `json:"vehicleTailId,omitempty"`
	ContainerWeight string     `json:"containerWeight,omitempty"`
	ContainerType   string     `json:"containerType,omitempty"`
}

type Trip struct {
	ID        string     `json:"id"`
	VehicleID string     `json:"vehicleId"`
	DriverID  *string    `json:"driverId"`
	StartTime dates.Time `json:"startTime"`
	EndTime   dates.Time `json:"endTime"`
	FullLoad  string     `json:"fullLoad"`
	Tasks     []*Task    `json:"tasks"`
}

// Overlaps reports half-open interval intersection with [rangeStart, rangeEnd).
func (t *Trip) Overlaps(rangeStart, rangeEnd time.Time) bool {
	return t.EndTime.After(rangeStart) && t.StartTime.Before(rangeEnd)
}

// Duration is the span between the trip endpoints; preserved verbatim when a
// trip is dragged onto another vehicle.
func (t *Trip) Duration() time.Duration {
	return t.EndTime.Sub(t.StartTime.Time)
}

// Vehicle is a prime mover on the gantt board. Trips is a mirror of the
// store's trip collection filtered to this vehicle; the store keeps it in
// sync inside every mutation, never lazily.
type Vehicle struct {
	ID          string  `json:"id"`
	PlateNumber string  `json:"plateNumber"`
	DriverID    *string `json:"driverId"`
	Trips       []*Trip `json:"trips"`
}
