// Package storetest provides an in-memory store.Store and a conformance
// suite shared by the driver integration tests and the service/API tests.
package storetest

import (
	"context"
	"sync"
	"time"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store"
)

// Fake is an in-memory store.Store. It honors the same contracts as the
// real drivers: absence is model.ErrNotFound and UpdateStatus is atomic
// under the store mutex.
type Fake struct {
	mu           sync.Mutex
	instructions []*model.EmergencyInstruction
	helpRequests map[string]*model.HelpRequest

	// InstructionErr and HelpRequestErr, when set, are returned by every
	// operation on the respective collection. Used to exercise failure paths.
	InstructionErr error
	HelpRequestErr error
}

func NewFake() *Fake {
	return &Fake{helpRequests: make(map[string]*model.HelpRequest)}
}

func (f *Fake) Instructions() store.Instructions { return &fakeInstructions{f} }
func (f *Fake) HelpRequests() store.HelpRequests { return &fakeHelpRequests{f} }

type fakeInstructions struct{ p *Fake }

func (i *fakeInstructions) Insert(_ context.Context, ins *model.EmergencyInstruction) error {
	i.p.mu.Lock()
	defer i.p.mu.Unlock()
	if i.p.InstructionErr != nil {
		return i.p.InstructionErr
	}
	cp := *ins
	i.p.instructions = append(i.p.instructions, &cp)
	return nil
}

func (i *fakeInstructions) List(_ context.Context) ([]*model.EmergencyInstruction, error) {
	i.p.mu.Lock()
	defer i.p.mu.Unlock()
	if i.p.InstructionErr != nil {
		return nil, i.p.InstructionErr
	}
	out := make([]*model.EmergencyInstruction, 0, len(i.p.instructions))
	for _, ins := range i.p.instructions {
		cp := *ins
		out = append(out, &cp)
	}
	return out, nil
}

func (i *fakeInstructions) ListByType(_ context.Context, t model.EmergencyType) ([]*model.EmergencyInstruction, error) {
	i.p.mu.Lock()
	defer i.p.mu.Unlock()
	if i.p.InstructionErr != nil {
		return nil, i.p.InstructionErr
	}
	var out []*model.EmergencyInstruction
	for _, ins := range i.p.instructions {
		if ins.Type == t {
			cp := *ins
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (i *fakeInstructions) Count(_ context.Context) (int64, error) {
	i.p.mu.Lock()
	defer i.p.mu.Unlock()
	if i.p.InstructionErr != nil {
		return 0, i.p.InstructionErr
	}
	return int64(len(i.p.instructions)), nil
}

type fakeHelpRequests struct{ p *Fake }

func (h *fakeHelpRequests) Create(_ context.Context, hr *model.HelpRequest) (*model.HelpRequest, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	if h.p.HelpRequestErr != nil {
		return nil, h.p.HelpRequestErr
	}
	cp := *hr
	h.p.helpRequests[hr.ID] = &cp
	out := cp
	return &out, nil
}

func (h *fakeHelpRequests) Get(_ context.Context, id string) (*model.HelpRequest, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	if h.p.HelpRequestErr != nil {
		return nil, h.p.HelpRequestErr
	}
	hr, ok := h.p.helpRequests[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *hr
	return &cp, nil
}

func (h *fakeHelpRequests) ListByStatus(_ context.Context, s model.HelpRequestStatus) ([]*model.HelpRequest, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	if h.p.HelpRequestErr != nil {
		return nil, h.p.HelpRequestErr
	}
	var out []*model.HelpRequest
	for _, hr := range h.p.helpRequests {
		if hr.Status == s {
			cp := *hr
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (h *fakeHelpRequests) UpdateStatus(_ context.Context, id string, s model.HelpRequestStatus, updatedAt time.Time) (*model.HelpRequest, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	if h.p.HelpRequestErr != nil {
		return nil, h.p.HelpRequestErr
	}
	hr, ok := h.p.helpRequests[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	hr.Status = s
	hr.UpdatedAt = updatedAt
	cp := *hr
	return &cp, nil
}
