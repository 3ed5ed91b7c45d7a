// Package seed loads the demo fixtures the planner frontend is developed
// against: a small fleet, a spread of containers exercising each exception
// rule, and one pre-booked trip.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/bsblogistics/dispatchboard-backend/internal/containers"
	"github.com/bsblogistics/dispatchboard-backend/internal/fleet"
	"github.com/bsblogistics/dispatchboard-backend/pkg/dates"
)

func strPtr(s string) *string {
	return &s
}

// Demo populates the store and repository in place. Safe to call once at
// startup; not intended for repeated use.
func Demo(store *fleet.Store, repo *containers.Repository, now time.Time) {
	store.SetCatalogs(
		[]string{"ABC-123", "DEF-456", "GHI-789", "JKL-012", "MNO-345"},
		[]string{"DRIVER001", "DRIVER002", "DRIVER003", "DRIVER004", "DRIVER005"},
	)

	store.AddVehicle(&fleet.Vehicle{ID: "PM001", PlateNumber: "ABC-123", DriverID: strPtr("DRIVER001")})
	store.AddVehicle(&fleet.Vehicle{ID: "PM002", PlateNumber: "DEF-456", DriverID: strPtr("DRIVER002")})
	store.AddVehicle(&fleet.Vehicle{ID: "PM003", PlateNumber: "GHI-789"})

	for _, c := range demoContainers() {
		repo.Add(c)
	}

	trip := &fleet.Trip{
		ID:        uuid.NewString(),
		VehicleID: "PM001",
		DriverID:  strPtr("DRIVER001"),
		StartTime: dates.At(now.Add(1 * time.Hour)),
		EndTime:   dates.At(now.Add(4 * time.Hour)),
		FullLoad:  fleet.FullLoadNo,
	}
	store.AddTrip(trip)

	store.AddTask(&fleet.Task{
		ID:           uuid.NewString(),
		TripID:       trip.ID,
		ContainerNo:  "CONT001",
		TaskType:     fleet.TaskClient,
		PlanStart:    dates.At(now.Add(1 * time.Hour)),
		PlanEnd:      dates.At(now.Add(2 * time.Hour)),
		StartAddress: "Port Botany Terminal",
		EndAddress:   "Client A Warehouse",
		Status:       fleet.StatusPending,
	})
	store.AddTask(&fleet.Task{
		ID:           uuid.NewString(),
		TripID:       trip.ID,
		ContainerNo:  "CONT002",
		TaskType:     fleet.TaskEmptyPark,
		PlanStart:    dates.At(now.Add(150 * time.Minute)),
		PlanEnd:      dates.At(now.Add(4 * time.Hour)),
		StartAddress: "Client A Warehouse",
		EndAddress:   "Empty Park A",
		Status:       fleet.StatusPending,
	})
}

func demoContainers() []*containers.Container {
	base := containers.Container{
		LogisticsStatus:    containers.StatusClient,
		FullClientName:     "Client B",
		FullDeliverAddress: "Melbourne Warehouse",
		DeliverType:        "Empty",
		DoorPosition:       "B2",
		FullVesselName:     "MV Southern Star",
		CtnType:            "40HQ",
		CtnWeight:          "20000",
		Remark:             "standard",
		FreightForwarders:  "Forwarder B",
		Terminal:           "Melbourne Port",
		ETA:                "2024-01-16 06:00:00",
		ETD:                "2024-01-22 18:00:00",
		FirstFree:          "2024-01-17 00:00:00",
		LastFree:           "2024-01-19 23:59:59",
		LastDention:        "2024-01-20 00:00:00",
		DischargeTime:      "2024-01-16 08:00:00",
		GateoutTime:        "2024-01-16 10:00:00",
		EdoPin:             "PIN002",
		ShippingLine:       "Blue Anchor Line",
		EmptyPark:          "Empty Park B",
		PickUpDate:         "2024-01-17 08:00:00",
		DeliverDate:        "2024-01-17 12:00:00",
		PickEmptyDate:      "2024-01-19 09:00:00",
		DehireDate:         "2024-01-19 14:00:00",
		PlanPickUpDate:     "2024-01-17 08:00:00",
		PlanDeliverDate:    "2024-01-17 12:00:00",
		PlanPickEmptyDate:  "2024-01-19 09:00:00",
		PlanDehireDate:     "2024-01-19 14:00:00",
	}

	variant := func(mutate func(c *containers.Container)) *containers.Container {
		c := base
		mutate(&c)
		return &c
	}

	return []*containers.Container{
		variant(func(c *containers.Container) {
			c.CtnNumber = "CONT001"
			c.LogisticsStatus = containers.StatusNewOrder
			c.FullClientName = "Client A"
			c.FullDeliverAddress = "Port Botany Terminal"
			c.DeliverType = "Full"
			c.DoorPosition = "A1"
			c.FullVesselName = "MV Pacific Dawn"
			c.CtnType = "20GP"
			c.CtnWeight = "15000"
			c.Remark = "urgent"
			c.FreightForwarders = "Forwarder A"
			c.Terminal = "Sydney Port"
			c.ETA = "2024-01-15 08:00:00"
			c.ETD = "2024-01-20 16:00:00"
			c.FirstFree = "2024-01-16 00:00:00"
			c.LastFree = "2024-01-18 23:59:59"
			c.LastDention = "2024-01-19 00:00:00"
			c.EdoPin = "PIN001"
			c.ShippingLine = "Pacific Line"
			c.EmptyPark = "Empty Park A"
		}),
		variant(func(c *containers.Container) {
			c.CtnNumber = "CONT002"
		}),
		// pickup unplanned on the last free day
		variant(func(c *containers.Container) {
			c.CtnNumber = "CONT003"
			c.LastFree = "2025-09-30 23:59:59"
			c.LastDention = "2025-09-30 00:00:00"
			c.PlanPickUpDate = ""
		}),
		// pickup planned after the free window closes
		variant(func(c *containers.Container) {
			c.CtnNumber = "CONT004"
			c.LastFree = "2025-09-30 23:59:59"
			c.PlanPickUpDate = "2025-10-30 08:00:00"
		}),
		// dehire unplanned on the last detention day
		variant(func(c *containers.Container) {
			c.CtnNumber = "CONT005"
			c.LastFree = "2025-09-30 23:59:59"
			c.LastDention = "2025-09-30 00:00:00"
			c.PlanPickUpDate = "2025-10-30 08:00:00"
			c.PlanDehireDate = ""
		}),
		// dehire planned after detention starts
		variant(func(c *containers.Container) {
			c.CtnNumber = "CONT006"
			c.LastFree = "2025-09-30 23:59:59"
			c.LastDention = "2025-09-30 00:00:00"
			c.PlanPickUpDate = "2025-10-30 08:00:00"
			c.PlanDehireDate = "2025-10-30 08:00:00"
		}),
		// requested delivery with no plan
		variant(func(c *containers.Container) {
			c.CtnNumber = "CONT007"
			c.LastFree = "2025-09-30 23:59:59"
			c.LastDention = "2025-09-30 00:00:00"
			c.PlanPickUpDate = "2025-10-30 08:00:00"
			c.PlanDeliverDate = ""
			c.PlanDehireDate = "2025-10-30 08:00:00"
			c.RequestDeliverDate = "2025-09-30 00:00:00"
		}),
		// requested delivery planned on the wrong date
		variant(func(c *containers.Container) {
			c.CtnNumber = "CONT008"
			c.LastFree = "2025-09-30 23:59:59"
			c.LastDention = "2025-09-30 00:00:00"
			c.PlanPickUpDate = "2025-10-30 08:00:00"
			c.PlanDeliverDate = "2025-10-30 08:00:00"
			c.PlanDehireDate = "2025-10-30 08:00:00"
			c.RequestDeliverDate = "2025-09-30 00:00:00"
		}),
	}
}
