package repositories

import (
	"sync"

	"haveli_pos_backend/internal/models"
)

// StaffRepository is the in-memory staff roster. Plain keyed store.
type StaffRepository interface {
	List(unit models.BusinessUnit) []models.StaffMember
	ListAll() []models.StaffMember
	GetByID(id string) (models.StaffMember, error)
	Save(member models.StaffMember)
	Delete(id string) error
}

type staffRepository struct {
	mu      sync.RWMutex
	members map[string]models.StaffMember
	order   []string
}

// NewStaffRepository creates an empty roster store.
func NewStaffRepository() StaffRepository {
	return &staffRepository{members: make(map[string]models.StaffMember)}
}

func (r *staffRepository) List(unit models.BusinessUnit) []models.StaffMember {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.StaffMember
	for _, id := range r.order {
		if m, ok := r.members[id]; ok && m.Unit == unit {
			out = append(out, m)
		}
	}
	return out
}

func (r *staffRepository) ListAll() []models.StaffMember {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.StaffMember, 0, len(r.members))
	for _, id := range r.order {
		if m, ok := r.members[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

func (r *staffRepository) GetByID(id string) (models.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.members[id]; ok {
		return m, nil
	}
	return models.StaffMember{}, ErrNotFound
}

func (r *staffRepository) Save(member models.StaffMember) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.members[member.ID]; !exists {
		r.order = append(r.order, member.ID)
	}
	r.members[member.ID] = member
}

func (r *staffRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; !ok {
		return ErrNotFound
	}
	delete(r.members, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
