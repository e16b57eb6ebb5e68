package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store/storetest"
)

func TestCreateHelpRequest_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewHelpRequestService(storetest.NewFake())

	hr, err := svc.Create(ctx, model.CreateHelpRequest{
		EmergencyType:       "choking",
		LocationDescription: "123 Test St",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(hr.ID)
	assert.NoError(t, err, "id is a freshly generated uuid")
	assert.Equal(t, model.StatusActive, hr.Status)
	assert.Equal(t, model.EmergencyChoking, hr.EmergencyType)
	assert.True(t, hr.CreatedAt.Equal(hr.UpdatedAt), "created_at == updated_at on creation")

	got, err := svc.Get(ctx, hr.ID)
	require.NoError(t, err)
	assert.Equal(t, hr.ID, got.ID)
	assert.Equal(t, "123 Test St", got.LocationDescription)
}

func TestCreateHelpRequest_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewHelpRequestService(storetest.NewFake())
	lat := 40.7128

	cases := []struct {
		name string
		in   model.CreateHelpRequest
	}{
		{"unknown emergency type", model.CreateHelpRequest{EmergencyType: "earthquake", LocationDescription: "x"}},
		{"missing location", model.CreateHelpRequest{EmergencyType: "bleeding"}},
		{"latitude without longitude", model.CreateHelpRequest{EmergencyType: "bleeding", LocationDescription: "x", Latitude: &lat}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			require.ErrorIs(t, err, model.ErrValidation)
		})
	}
}

func TestCreateHelpRequest_OptionalFieldsPassThrough(t *testing.T) {
	ctx := context.Background()
	svc := NewHelpRequestService(storetest.NewFake())

	lat, lon := 40.7128, -74.0060
	phone := "not-even-a-phone-number" // format deliberately unvalidated
	info := "third floor, door is locked"

	hr, err := svc.Create(ctx, model.CreateHelpRequest{
		EmergencyType:       "allergic_reaction",
		LocationDescription: "45 Elm Ave",
		Latitude:            &lat,
		Longitude:           &lon,
		ContactPhone:        &phone,
		AdditionalInfo:      &info,
	})
	require.NoError(t, err)
	require.NotNil(t, hr.ContactPhone)
	assert.Equal(t, phone, *hr.ContactPhone)
	require.NotNil(t, hr.Latitude)
	assert.Equal(t, lat, *hr.Latitude)
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewHelpRequestService(storetest.NewFake())

	hr, err := svc.Create(ctx, model.CreateHelpRequest{
		EmergencyType:       "bleeding",
		LocationDescription: "9 Dock Rd",
	})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond) // updated_at must move strictly past created_at

	upd, err := svc.UpdateStatus(ctx, hr.ID, "responded")
	require.NoError(t, err)
	assert.Equal(t, model.StatusResponded, upd.Status)
	assert.True(t, upd.UpdatedAt.After(hr.CreatedAt), "updated_at strictly greater than created_at")
	assert.True(t, upd.CreatedAt.Equal(hr.CreatedAt), "created_at is immutable")

	got, err := svc.Get(ctx, hr.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusResponded, got.Status)
}

func TestUpdateStatus_ArbitraryTransitionsAllowed(t *testing.T) {
	ctx := context.Background()
	svc := NewHelpRequestService(storetest.NewFake())

	hr, err := svc.Create(ctx, model.CreateHelpRequest{
		EmergencyType:       "choking",
		LocationDescription: "1 Main St",
	})
	require.NoError(t, err)

	// Forward to terminal, then back again: a plain assignment, no
	// ordering enforced.
	_, err = svc.UpdateStatus(ctx, hr.ID, "resolved")
	require.NoError(t, err)
	upd, err := svc.UpdateStatus(ctx, hr.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, upd.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewHelpRequestService(storetest.NewFake())

	_, err := svc.UpdateStatus(context.Background(), "some-id", "escalated")
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestUpdateStatus_UnknownIDCreatesNothing(t *testing.T) {
	ctx := context.Background()
	fake := storetest.NewFake()
	svc := NewHelpRequestService(fake)

	_, err := svc.UpdateStatus(ctx, "nonexistent-id", "resolved")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = fake.HelpRequests().Get(ctx, "nonexistent-id")
	require.ErrorIs(t, err, model.ErrNotFound, "failed update must not upsert")
}

func TestListActive_FiltersOutRespondedAndResolved(t *testing.T) {
	ctx := context.Background()
	svc := NewHelpRequestService(storetest.NewFake())

	mk := func() *model.HelpRequest {
		hr, err := svc.Create(ctx, model.CreateHelpRequest{
			EmergencyType:       "bleeding",
			LocationDescription: "somewhere",
		})
		require.NoError(t, err)
		return hr
	}
	keep := mk()
	responded := mk()
	resolved := mk()

	_, err := svc.UpdateStatus(ctx, responded.ID, "responded")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, resolved.ID, "resolved")
	require.NoError(t, err)

	lst, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, lst, 1)
	assert.Equal(t, keep.ID, lst[0].ID)
}

func TestListActive_EmptyReturnsEmptySlice(t *testing.T) {
	svc := NewHelpRequestService(storetest.NewFake())

	lst, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, lst)
	assert.Empty(t, lst)
}
