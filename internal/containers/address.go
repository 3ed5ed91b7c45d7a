package containers

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bsblogistics/dispatchboard-backend/internal/fleet"
	"github.com/bsblogistics/dispatchboard-backend/pkg/dates"
)

// PickupAddress resolves where a container is collected from, based on its
// logistics status. Anything unrecognized falls back to the terminal.
func PickupAddress(c *Container) string {
	switch c.LogisticsStatus {
	case StatusNewOrder:
		return c.Terminal
	case StatusYardFull:
		return fmt.Sprintf("%s - Ready to Deliver", c.FullClientName)
	case StatusClient:
		return c.FullDeliverAddress
	case StatusYardEmpty:
		return fmt.Sprintf("%s - Ready to De-hire", c.FullClientName)
	case StatusEmptyPark:
		return c.EmptyPark
	default:
		return c.Terminal
	}
}

// DeliveryAddress resolves where a task of the given type ends. Movement
// task types map to fixed placeholder locations; unknown types fall back to
// the container's delivery address.
func DeliveryAddress(taskType fleet.TaskType, c *Container) string {
	switch taskType {
	case fleet.TaskYardFull:
		return fmt.Sprintf("%s - Ready to Deliver", c.FullClientName)
	case fleet.TaskClient:
		return c.FullDeliverAddress
	case fleet.TaskYardEmpty:
		return fmt.Sprintf("%s - Ready to De-hire", c.FullClientName)
	case fleet.TaskEmptyPark:
		return c.EmptyPark
	case fleet.TaskDriving:
		return "In Transit"
	case fleet.TaskLifting:
		return "Lifting Location"
	case fleet.TaskWaiting:
		return "Waiting Area"
	case fleet.TaskOther:
		return "Other Location"
	default:
		return c.FullDeliverAddress
	}
}

// MaterializeTask turns a container record into a schedulable task. When no
// plan window is given the task starts at the top of the current hour and
// runs for 60 minutes. The task is returned, not stored.
func MaterializeTask(c *Container, taskType fleet.TaskType, tripID string, planStart, planEnd *time.Time, now time.Time) *fleet.Task {
	start := now.Truncate(time.Hour)
	if planStart != nil {
		start = *planStart
	}
	end := start.Add(60 * time.Minute)
	if planEnd != nil {
		end = *planEnd
	}

	return &fleet.Task{
		ID:              uuid.NewString(),
		TripID:          tripID,
		ContainerNo:     c.CtnNumber,
		TaskType:        taskType,
		PlanStart:       dates.At(start),
		PlanEnd:         dates.At(end),
		StartAddress:    PickupAddress(c),
		EndAddress:      DeliveryAddress(taskType, c),
		Status:          fleet.StatusPending,
		ContainerWeight: c.CtnWeight,
		ContainerType:   c.CtnType,
	}
}
