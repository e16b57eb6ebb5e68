package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store"
)

// InstructionService serves the read-only emergency instruction catalog and
// owns its one-time bootstrap.
type InstructionService struct {
	store store.Store
}

func NewInstructionService(s store.Store) *InstructionService {
	return &InstructionService{store: s}
}

// Bootstrap seeds the instruction catalog when it is empty and is a no-op
// otherwise, so it is safe to run on every process start.
//
// The existence check and the inserts are not one atomic unit: two
// processes racing through a first-time startup can both observe an empty
// catalog and both insert. Exactly-once seeding would need a store-level
// uniqueness constraint or a single-writer gate; this accepts at-least-once
// inserts, matching the behavior clients already tolerate.
func (s *InstructionService) Bootstrap(ctx context.Context) error {
	n, err := s.store.Instructions().Count(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: count instructions: %w", err)
	}
	if n > 0 {
		log.Debug().Int64("count", n).Msg("instruction catalog already seeded")
		return nil
	}

	seed := seedInstructions(time.Now().UTC())
	for _, ins := range seed {
		if err := s.store.Instructions().Insert(ctx, ins); err != nil {
			return fmt.Errorf("bootstrap: insert %q: %w", ins.Title, err)
		}
	}
	log.Info().Int("count", len(seed)).Msg("instruction catalog seeded")
	return nil
}

// List returns every instruction, in store-native order, for bulk
// client-side caching.
func (s *InstructionService) List(ctx context.Context) ([]*model.EmergencyInstruction, error) {
	res, err := s.store.Instructions().List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("ListInstructions failed")
		return nil, err
	}
	if res == nil {
		res = []*model.EmergencyInstruction{}
	}
	return res, nil
}

// ListByType returns all instructions for one emergency type. A token
// outside the closed enumeration is a validation error and never reaches
// the store; a valid type with no instructions is not found, not an empty
// success.
func (s *InstructionService) ListByType(ctx context.Context, raw string) ([]*model.EmergencyInstruction, error) {
	t, err := model.ParseEmergencyType(raw)
	if err != nil {
		return nil, err
	}
	res, err := s.store.Instructions().ListByType(ctx, t)
	if err != nil {
		log.Warn().Str("type", raw).Err(err).Msg("ListInstructionsByType failed")
		return nil, err
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: no instructions for type %q", model.ErrNotFound, t)
	}
	return res, nil
}
