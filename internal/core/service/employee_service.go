package service

import (
	"context"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

// EmployeeService manages staff records. The referenced user must exist.
type EmployeeService struct {
	repo  ports.EmployeeRepository
	users ports.UserRepository
}

func NewEmployeeService(repo ports.EmployeeRepository, users ports.UserRepository) *EmployeeService {
	return &EmployeeService{repo: repo, users: users}
}

func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &domain.Employee{
		UserID:  in.UserID,
		Salary:  in.Salary,
		JobDesc: in.JobDesc,
	})
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UserID != employee.UserID {
		if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
			return nil, err
		}
		employee.UserID = in.UserID
	}
	employee.Salary = in.Salary
	employee.JobDesc = in.JobDesc
	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
