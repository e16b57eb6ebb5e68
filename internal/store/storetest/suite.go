package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Instructions: empty catalog
	if n, err := s.Instructions().Count(ctx); err != nil || n != 0 {
		t.Fatalf("Count on empty catalog: n=%d err=%v", n, err)
	}

	ins := &model.EmergencyInstruction{
		ID:                uuid.New().String(),
		Type:              model.EmergencyChoking,
		Title:             "Adult Choking (Conscious)",
		Description:       "test instruction",
		Steps:             []string{"step one", "step two"},
		VoiceInstructions: []string{"say one", "say two"},
		Severity:          model.SeverityCritical,
		DurationEstimate:  "1-2 minutes",
		WhenToCall911:     "immediately",
		CreatedAt:         time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := s.Instructions().Insert(ctx, ins); err != nil {
		t.Fatalf("Insert instruction: %v", err)
	}
	if n, err := s.Instructions().Count(ctx); err != nil || n != 1 {
		t.Fatalf("Count after insert: n=%d err=%v", n, err)
	}
	if lst, err := s.Instructions().List(ctx); err != nil || len(lst) != 1 {
		t.Fatalf("List instructions: n=%d err=%v", len(lst), err)
	} else if lst[0].ID != ins.ID || len(lst[0].Steps) != 2 || len(lst[0].VoiceInstructions) != 2 {
		t.Fatalf("List round-trip mismatch: %+v", lst[0])
	}
	if lst, err := s.Instructions().ListByType(ctx, model.EmergencyChoking); err != nil || len(lst) != 1 {
		t.Fatalf("ListByType choking: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Instructions().ListByType(ctx, model.EmergencyBleeding); err != nil || len(lst) != 0 {
		t.Fatalf("ListByType bleeding should be empty: n=%d err=%v", len(lst), err)
	}

	// HelpRequests: create and read back
	lat, lon := 40.7128, -74.0060
	hr := &model.HelpRequest{
		ID:                  uuid.New().String(),
		EmergencyType:       model.EmergencyBleeding,
		LocationDescription: "123 Test St",
		Latitude:            &lat,
		Longitude:           &lon,
		Status:              model.StatusActive,
		CreatedAt:           time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt:           time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := s.HelpRequests().Create(ctx, hr); err != nil {
		t.Fatalf("Create help request: %v", err)
	}
	got, err := s.HelpRequests().Get(ctx, hr.ID)
	if err != nil || got == nil {
		t.Fatalf("Get help request: got=%v err=%v", got, err)
	}
	if got.LocationDescription != "123 Test St" || got.Latitude == nil || *got.Latitude != lat {
		t.Fatalf("Get round-trip mismatch: %+v", got)
	}

	// Absence is ErrNotFound, never an empty record.
	if _, err := s.HelpRequests().Get(ctx, "nonexistent-id"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get unknown id: want ErrNotFound, got %v", err)
	}

	// ListByStatus filters
	if lst, err := s.HelpRequests().ListByStatus(ctx, model.StatusActive); err != nil || len(lst) != 1 {
		t.Fatalf("ListByStatus active: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.HelpRequests().ListByStatus(ctx, model.StatusResolved); err != nil || len(lst) != 0 {
		t.Fatalf("ListByStatus resolved should be empty: n=%d err=%v", len(lst), err)
	}

	// Atomic status update bumps updated_at and returns the stored record.
	newUpdated := hr.UpdatedAt.Add(2 * time.Second)
	upd, err := s.HelpRequests().UpdateStatus(ctx, hr.ID, model.StatusResponded, newUpdated)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if upd.Status != model.StatusResponded || !upd.UpdatedAt.After(hr.CreatedAt) {
		t.Fatalf("UpdateStatus result mismatch: %+v", upd)
	}
	if got, err := s.HelpRequests().Get(ctx, hr.ID); err != nil || got.Status != model.StatusResponded {
		t.Fatalf("Get after UpdateStatus: got=%+v err=%v", got, err)
	}
	if lst, err := s.HelpRequests().ListByStatus(ctx, model.StatusActive); err != nil || len(lst) != 0 {
		t.Fatalf("responded record still listed as active: n=%d err=%v", len(lst), err)
	}

	// Backward transitions are a plain assignment, not an error.
	if upd, err := s.HelpRequests().UpdateStatus(ctx, hr.ID, model.StatusActive, newUpdated.Add(time.Second)); err != nil || upd.Status != model.StatusActive {
		t.Fatalf("backward transition: got=%+v err=%v", upd, err)
	}

	// Updating an unknown id fails and creates nothing.
	if _, err := s.HelpRequests().UpdateStatus(ctx, "nonexistent-id", model.StatusResolved, time.Now().UTC()); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("UpdateStatus unknown id: want ErrNotFound, got %v", err)
	}
	if _, err := s.HelpRequests().Get(ctx, "nonexistent-id"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("UpdateStatus must not upsert: got %v", err)
	}
}
