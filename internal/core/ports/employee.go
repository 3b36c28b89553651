package ports

import (
	"context"

	"github.com/deskhive/booking-system/internal/core/domain"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

type EmployeeInput struct {
	UserID  string
	Salary  float64
	JobDesc string
}

type EmployeeService interface {
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
