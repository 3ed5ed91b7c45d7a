package fleet

import (
	"sync"
	"time"

	"github.com/bsblogistics/dispatchboard-backend/pkg/dates"
	pkgerrors "github.com/bsblogistics/dispatchboard-backend/pkg/errors"
)

// Store owns the vehicle, trip and task collections. Collections are
// insertion-ordered slices; a trip lives in the global collection and in its
// vehicle's mirror as the same object, and both memberships are rewritten
// inside the same locked mutation so the two views cannot diverge.
type Store struct {
	mu       sync.RWMutex
	vehicles []*Vehicle
	trips    []*Trip
	tasks    []*Task

	// master catalogs backing the vehicle/driver availability endpoint
	plateCatalog  []string
	driverCatalog []string
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AddVehicle(v *Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.Trips == nil {
		v.Trips = []*Trip{}
	}
	s.vehicles = append(s.vehicles, v)
}

func (s *Store) HasVehicle(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findVehicle(id) != nil
}

// AddTrip appends the trip to the global collection and to its vehicle's
// mirror. An unknown vehicleId is not rejected: the trip is still created and
// simply has no mirror to join, matching the legacy planner's behavior.
func (s *Store) AddTrip(t *Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.Tasks == nil {
		t.Tasks = []*Task{}
	}
	s.trips = append(s.trips, t)
	if v := s.findVehicle(t.VehicleID); v != nil {
		v.Trips = append(v.Trips, t)
	}
}

// DeleteTrip cascades: every task owned by the trip is removed first, then
// the trip leaves the global collection and its vehicle mirror.
func (s *Store) DeleteTrip(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if task.TripID != id {
			kept = append(kept, task)
		}
	}
	s.tasks = kept

	for i, trip := range s.trips {
		if trip.ID != id {
			continue
		}
		s.trips = append(s.trips[:i], s.trips[i+1:]...)
		for _, v := range s.vehicles {
			v.Trips = removeTrip(v.Trips, id)
		}
		return true
	}
	return false
}

// AddTask appends the task to the global collection and to the owning trip's
// task list. The trip must exist and hold fewer than MaxTasksPerTrip tasks;
// both checks guard the containment invariant at the lowest level even though
// the service validates first.
func (s *Store) AddTask(task *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip := s.findTrip(task.TripID)
	if trip == nil {
		return pkgerrors.New(pkgerrors.CodeTripConstraint, "task references a trip that does not exist")
	}
	if len(trip.Tasks) >= MaxTasksPerTrip {
		return pkgerrors.New(pkgerrors.CodeTripConstraint, "trip already holds the maximum number of tasks")
	}

	s.tasks = append(s.tasks, task)
	trip.Tasks = append(trip.Tasks, task)
	return nil
}

func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID != id {
			continue
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		for _, trip := range s.trips {
			trip.Tasks = removeTask(trip.Tasks, id)
		}
		return true
	}
	return false
}

// ReassignTrip moves a trip onto another vehicle, shifting it to newStart
// while preserving its duration. The target vehicle id is not validated here;
// the service layer rejects unknown targets before calling.
func (s *Store) ReassignTrip(tripID, newVehicleID string, newStart time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip := s.findTrip(tripID)
	if trip == nil {
		return false
	}

	duration := trip.Duration()
	oldVehicleID := trip.VehicleID
	trip.VehicleID = newVehicleID
	trip.StartTime = dates.At(newStart)
	trip.EndTime = dates.At(newStart.Add(duration))

	if v := s.findVehicle(oldVehicleID); v != nil {
		v.Trips = removeTrip(v.Trips, tripID)
	}
	if v := s.findVehicle(newVehicleID); v != nil {
		v.Trips = append(v.Trips, trip)
	}
	return true
}

// RetimeTrip rewrites both endpoints in place. Ordering is validated at the
// service boundary, not here.
func (s *Store) RetimeTrip(tripID string, newStart, newEnd time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip := s.findTrip(tripID)
	if trip == nil {
		return false
	}
	trip.StartTime = dates.At(newStart)
	trip.EndTime = dates.At(newEnd)
	return true
}

// VehiclesInRange returns every vehicle in insertion order, carrying only the
// trips that overlap [rangeStart, rangeEnd). Qualifying trips keep their full
// task list; vehicles without overlap are returned with an empty trip list.
func (s *Store) VehiclesInRange(rangeStart, rangeEnd time.Time) []*Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		view := &Vehicle{
			ID:          v.ID,
			PlateNumber: v.PlateNumber,
			DriverID:    v.DriverID,
			Trips:       []*Trip{},
		}
		for _, trip := range s.trips {
			if trip.VehicleID == v.ID && trip.Overlaps(rangeStart, rangeEnd) {
				view.Trips = append(view.Trips, cloneTrip(trip))
			}
		}
		out = append(out, view)
	}
	return out
}

func (s *Store) TripByID(id string) (*Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trip := s.findTrip(id)
	if trip == nil {
		return nil, false
	}
	return cloneTrip(trip), true
}

func (s *Store) SetCatalogs(plates, drivers []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plateCatalog = append([]string(nil), plates...)
	s.driverCatalog = append([]string(nil), drivers...)
}

// AvailableVehicleDrivers returns the catalog plates and drivers not yet
// attached to any vehicle on the board.
func (s *Store) AvailableVehicleDrivers() (plates, drivers []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usedPlates := map[string]bool{}
	usedDrivers := map[string]bool{}
	for _, v := range s.vehicles {
		usedPlates[v.PlateNumber] = true
		if v.DriverID != nil {
			usedDrivers[*v.DriverID] = true
		}
	}

	plates = []string{}
	for _, plate := range s.plateCatalog {
		if !usedPlates[plate] {
			plates = append(plates, plate)
		}
	}
	drivers = []string{}
	for _, driver := range s.driverCatalog {
		if !usedDrivers[driver] {
			drivers = append(drivers, driver)
		}
	}
	return plates, drivers
}

func (s *Store) findVehicle(id string) *Vehicle {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func (s *Store) findTrip(id string) *Trip {
	for _, t := range s.trips {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func removeTrip(trips []*Trip, id string) []*Trip {
	kept := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return kept
}

func removeTask(tasks []*Task, id string) []*Task {
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return kept
}

func cloneTrip(t *Trip) *Trip {
	cp := *t
	cp.Tasks = make([]*Task, 0, len(t.Tasks))
	for _, task := range t.Tasks {
		taskCopy := *task
		cp.Tasks = append(cp.Tasks, &taskCopy)
	}
	return &cp
}
