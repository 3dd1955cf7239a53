package services

import (
	"fmt"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
	"haveli_pos_backend/pkg/utils"

	"github.com/google/uuid"
)

// StaffService is the roster data store behind the per-unit team screens.
type StaffService interface {
	List(unit models.BusinessUnit) []models.StaffMember
	ListAll() []models.StaffMember
	Save(member models.StaffMember) (*models.StaffMember, error)
	Delete(id string) error
}

type staffService struct {
	staffRepo repositories.StaffRepository
}

// NewStaffService creates a new instance of StaffService.
func NewStaffService(sr repositories.StaffRepository) StaffService {
	return &staffService{staffRepo: sr}
}

func (s *staffService) List(unit models.BusinessUnit) []models.StaffMember {
	return s.staffRepo.List(unit)
}

func (s *staffService) ListAll() []models.StaffMember {
	return s.staffRepo.ListAll()
}

func (s *staffService) Save(member models.StaffMember) (*models.StaffMember, error) {
	if utils.IsEmpty(member.Name) {
		return nil, fmt.Errorf("%w: staff name must not be empty", ErrValidation)
	}
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	s.staffRepo.Save(member)
	return &member, nil
}

func (s *staffService) Delete(id string) error {
	if err := s.staffRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: staff member %s", ErrItemNotFound, id)
	}
	return nil
}
