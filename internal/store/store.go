package store

import (
	"context"
	"time"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., postgres, mongo).
// Absence is reported as model.ErrNotFound, never as a nil record.
type Store interface {
	Instructions() Instructions
	HelpRequests() HelpRequests
}

// Instructions is the emergency-instruction catalog. Records are inserted
// by the bootstrap only and are read-only afterwards.
type Instructions interface {
	Insert(ctx context.Context, ins *model.EmergencyInstruction) error
	List(ctx context.Context) ([]*model.EmergencyInstruction, error)
	ListByType(ctx context.Context, t model.EmergencyType) ([]*model.EmergencyInstruction, error)
	Count(ctx context.Context) (int64, error)
}

// HelpRequests is the help-request ledger. Records are created, read and
// status-transitioned; they are never deleted.
type HelpRequests interface {
	Create(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error)
	Get(ctx context.Context, id string) (*model.HelpRequest, error)
	ListByStatus(ctx context.Context, s model.HelpRequestStatus) ([]*model.HelpRequest, error)
	// UpdateStatus must be a single atomic find-and-mutate in the driver
	// (no read-modify-write in calling code) and returns the record as
	// persisted after the update.
	UpdateStatus(ctx context.Context, id string, s model.HelpRequestStatus, updatedAt time.Time) (*model.HelpRequest, error)
}
