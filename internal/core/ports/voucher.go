package ports

import (
	"context"

	"github.com/deskhive/booking-system/internal/core/domain"
)

type VoucherRepository interface {
	Create(ctx context.Context, voucher *domain.Voucher) (*domain.Voucher, error)
	FindByID(ctx context.Context, id string) (*domain.Voucher, error)
	FindByCode(ctx context.Context, code string) (*domain.Voucher, error)
	FindAll(ctx context.Context) ([]domain.Voucher, error)
	Update(ctx context.Context, voucher *domain.Voucher) error
	Delete(ctx context.Context, id string) error
}

type VoucherInput struct {
	Code     string
	Discount int
	Active   bool
}

type VoucherService interface {
	Create(ctx context.Context, in VoucherInput) (*domain.Voucher, error)
	Get(ctx context.Context, id string) (*domain.Voucher, error)
	List(ctx context.Context) ([]domain.Voucher, error)
	Update(ctx context.Context, id string, in VoucherInput) (*domain.Voucher, error)
	Delete(ctx context.Context, id string) error
}
