package containers

import (
	"context"
	"testing"
	"time"

	"github.com/bsblogistics/dispatchboard-backend/internal/fleet"
	pkgerrors "github.com/bsblogistics/dispatchboard-backend/pkg/errors"
)

func newTestService(t *testing.T, repo *Repository, trips TripChecker, now time.Time) Service {
	t.Helper()

	if trips == nil {
		trips = fleet.NewStore()
	}
	svc, err := NewService(ServiceParams{
		Repo:  repo,
		Trips: trips,
		Now:   func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func ctnNumbers(list []*Container) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.CtnNumber)
	}
	return out
}

func TestOverduePickups(t *testing.T) {
	repo := NewRepository()
	repo.Add(&Container{CtnNumber: "UNPLANNED", LastFree: "2025-09-30 23:59:59"})
	repo.Add(&Container{CtnNumber: "LATE", LastFree: "2025-09-30 23:59:59", PlanPickUpDate: "2025-10-01 08:00:00"})
	repo.Add(&Container{CtnNumber: "ONTIME", LastFree: "2025-09-30 23:59:59", PlanPickUpDate: "2025-09-28 08:00:00"})
	repo.Add(&Container{CtnNumber: "OTHERDAY", LastFree: "2025-10-05 23:59:59"})
	repo.Add(&Container{CtnNumber: "BADDATE", LastFree: "not-a-date"})

	svc := newTestService(t, repo, nil, time.Now())
	day := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	got := ctnNumbers(svc.OverduePickups(context.Background(), day))
	want := []string{"UNPLANNED", "LATE"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOverduePickupsAcceptsDateOnlyQuery(t *testing.T) {
	repo := NewRepository()
	repo.Add(&Container{CtnNumber: "UNPLANNED", LastFree: "2025-09-30 23:59:59"})

	svc := newTestService(t, repo, nil, time.Now())

	// a midnight query day still matches a deadline late in the same day
	day := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	if got := svc.OverduePickups(context.Background(), day); len(got) != 1 {
		t.Fatalf("expected 1 container, got %d", len(got))
	}
}

func TestOverdueDehires(t *testing.T) {
	repo := NewRepository()
	repo.Add(&Container{CtnNumber: "UNPLANNED", LastDention: "2025-10-01 00:00:00"})
	repo.Add(&Container{CtnNumber: "LATE", LastDention: "2025-10-01 00:00:00", PlanDehireDate: "2025-10-02 08:00:00"})
	repo.Add(&Container{CtnNumber: "ONTIME", LastDention: "2025-10-01 00:00:00", PlanDehireDate: "2025-09-29 08:00:00"})

	svc := newTestService(t, repo, nil, time.Now())
	day := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	got := ctnNumbers(svc.OverdueDehires(context.Background(), day))
	want := []string{"UNPLANNED", "LATE"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDeliveryMismatches(t *testing.T) {
	repo := NewRepository()
	repo.Add(&Container{CtnNumber: "UNPLANNED", RequestDeliverDate: "2025-09-30 00:00:00"})
	repo.Add(&Container{CtnNumber: "WRONGDAY", RequestDeliverDate: "2025-09-30 00:00:00", PlanDeliverDate: "2025-10-02 08:00:00"})
	repo.Add(&Container{CtnNumber: "MATCH", RequestDeliverDate: "2025-09-30 00:00:00", PlanDeliverDate: "2025-09-30 00:00:00"})
	repo.Add(&Container{CtnNumber: "NOREQUEST"})

	svc := newTestService(t, repo, nil, time.Now())
	day := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	got := ctnNumbers(svc.DeliveryMismatches(context.Background(), day))
	want := []string{"UNPLANNED", "WRONGDAY"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDetailUnknownContainer(t *testing.T) {
	svc := newTestService(t, NewRepository(), nil, time.Now())

	_, err := svc.Detail(context.Background(), "NOPE")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	repo := NewRepository()
	repo.Add(&Container{CtnNumber: "ABCU1234567", FullClientName: "Client A", LogisticsStatus: StatusNewOrder, Terminal: "Sydney Port"})
	repo.Add(&Container{CtnNumber: "DEFU7654321", FullClientName: "Client B", LogisticsStatus: StatusClient, Terminal: "Melbourne Port"})

	svc := newTestService(t, repo, nil, time.Now())

	got := svc.List(context.Background(), ListFilters{Search: "client a"})
	if len(got) != 1 || got[0].CtnNumber != "ABCU1234567" {
		t.Fatalf("search filter failed: %v", ctnNumbers(got))
	}

	got = svc.List(context.Background(), ListFilters{LogisticsStatus: StatusClient})
	if len(got) != 1 || got[0].CtnNumber != "DEFU7654321" {
		t.Fatalf("status filter failed: %v", ctnNumbers(got))
	}

	got = svc.List(context.Background(), ListFilters{Terminal: "Sydney Port", Search: "defu"})
	if len(got) != 0 {
		t.Fatalf("combined filters should exclude everything, got %v", ctnNumbers(got))
	}
}

func TestPlanToTaskValidatesTargetTrip(t *testing.T) {
	repo := NewRepository()
	repo.Add(&Container{CtnNumber: "CONT001", LogisticsStatus: StatusNewOrder, Terminal: "Sydney Port", FullDeliverAddress: "Client A Warehouse"})

	store := fleet.NewStore()
	store.AddVehicle(&fleet.Vehicle{ID: "PM001", PlateNumber: "ABC-123"})
	fullTrip := &fleet.Trip{ID: "trip-full", VehicleID: "PM001", FullLoad: fleet.FullLoadYes}
	store.AddTrip(fullTrip)

	base := time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC)
	svc := newTestService(t, repo, store, base)

	_, err := svc.PlanToTask(context.Background(), PlanToTaskRequest{
		ContainerNo: "CONT001",
		TaskType:    fleet.TaskClient,
		TripID:      "nope",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeTripConstraint {
		t.Fatalf("expected trip constraint for unknown trip, got %v", err)
	}

	_, err = svc.PlanToTask(context.Background(), PlanToTaskRequest{
		ContainerNo: "CONT001",
		TaskType:    fleet.TaskClient,
		TripID:      "trip-full",
	})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeTripConstraint {
		t.Fatalf("expected trip constraint for full-load trip, got %v", err)
	}

	_, err = svc.PlanToTask(context.Background(), PlanToTaskRequest{
		ContainerNo: "NOPE",
		TaskType:    fleet.TaskClient,
	})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for unknown container, got %v", err)
	}
}

func TestPlanToTaskDoesNotStore(t *testing.T) {
	repo := NewRepository()
	repo.Add(&Container{CtnNumber: "CONT001", LogisticsStatus: StatusNewOrder, Terminal: "Sydney Port", FullDeliverAddress: "Client A Warehouse", CtnWeight: "15000", CtnType: "20GP"})

	store := fleet.NewStore()
	store.AddVehicle(&fleet.Vehicle{ID: "PM001", PlateNumber: "ABC-123"})
	trip := &fleet.Trip{ID: "trip-1", VehicleID: "PM001", FullLoad: fleet.FullLoadNo}
	store.AddTrip(trip)

	base := time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC)
	svc := newTestService(t, repo, store, base)

	task, err := svc.PlanToTask(context.Background(), PlanToTaskRequest{
		ContainerNo: "CONT001",
		TaskType:    fleet.TaskClient,
		TripID:      "trip-1",
	})
	if err != nil {
		t.Fatalf("PlanToTask: %v", err)
	}

	if task.StartAddress != "Sydney Port" {
		t.Fatalf("expected pickup at the terminal, got %q", task.StartAddress)
	}
	if task.EndAddress != "Client A Warehouse" {
		t.Fatalf("expected delivery at the client, got %q", task.EndAddress)
	}
	if task.ContainerWeight != "15000" || task.ContainerType != "20GP" {
		t.Fatalf("expected container weight and type carried over, got %+v", task)
	}

	// default window: top of the current hour, one hour long
	wantStart := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	if !task.PlanStart.Equal(wantStart) || !task.PlanEnd.Equal(wantStart.Add(time.Hour)) {
		t.Fatalf("unexpected default plan window %v..%v", task.PlanStart, task.PlanEnd)
	}

	// nothing was persisted on the trip
	stored, ok := store.TripByID("trip-1")
	if !ok {
		t.Fatal("trip disappeared")
	}
	if len(stored.Tasks) != 0 {
		t.Fatalf("expected no stored tasks, got %d", len(stored.Tasks))
	}
}
