package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store"
)

// HelpRequestService creates help requests and drives their status
// lifecycle.
type HelpRequestService struct {
	store store.Store
}

func NewHelpRequestService(s store.Store) *HelpRequestService {
	return &HelpRequestService{store: s}
}

// Create validates client input, assigns a fresh identifier, and persists
// the record with status active and created_at == updated_at.
func (s *HelpRequestService) Create(ctx context.Context, in model.CreateHelpRequest) (*model.HelpRequest, error) {
	t, err := model.ParseEmergencyType(in.EmergencyType)
	if err != nil {
		return nil, err
	}
	if in.LocationDescription == "" {
		return nil, fmt.Errorf("%w: location_description is required", model.ErrValidation)
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude must be provided together", model.ErrValidation)
	}

	now := time.Now().UTC()
	hr := &model.HelpRequest{
		ID:                  uuid.New().String(),
		EmergencyType:       t,
		LocationDescription: in.LocationDescription,
		Latitude:            in.Latitude,
		Longitude:           in.Longitude,
		ContactPhone:        in.ContactPhone,
		AdditionalInfo:      in.AdditionalInfo,
		Status:              model.StatusActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	log.Info().Str("id", hr.ID).Str("emergency_type", string(t)).Msg("creating help request")
	out, err := s.store.HelpRequests().Create(ctx, hr)
	if err != nil {
		log.Error().Err(err).Str("id", hr.ID).Msg("failed to create help request")
		return nil, err
	}
	return out, nil
}

// Get returns one help request by its identifier.
func (s *HelpRequestService) Get(ctx context.Context, id string) (*model.HelpRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", model.ErrValidation)
	}
	return s.store.HelpRequests().Get(ctx, id)
}

// ListActive returns all help requests still awaiting response. Results
// are unbounded; pagination is a known scale limit.
func (s *HelpRequestService) ListActive(ctx context.Context) ([]*model.HelpRequest, error) {
	res, err := s.store.HelpRequests().ListByStatus(ctx, model.StatusActive)
	if err != nil {
		log.Warn().Err(err).Msg("ListActive failed")
		return nil, err
	}
	if res == nil {
		res = []*model.HelpRequest{}
	}
	return res, nil
}

// UpdateStatus assigns a new status and refreshes updated_at in one atomic
// store operation. Any status in the enumeration may be written from any
// other; transition order is intentionally not enforced (see DESIGN.md).
func (s *HelpRequestService) UpdateStatus(ctx context.Context, id, raw string) (*model.HelpRequest, error) {
	st, err := model.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", model.ErrValidation)
	}

	out, err := s.store.HelpRequests().UpdateStatus(ctx, id, st, time.Now().UTC())
	if err != nil {
		log.Warn().Str("id", id).Str("status", raw).Err(err).Msg("UpdateStatus failed")
		return nil, err
	}
	return out, nil
}
