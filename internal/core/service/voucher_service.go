package service

import (
	"context"
	"strings"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

// VoucherService manages discount codes. Codes are stored uppercased so
// redemption is case-insensitive.
type VoucherService struct {
	repo ports.VoucherRepository
}

func NewVoucherService(repo ports.VoucherRepository) *VoucherService {
	return &VoucherService{repo: repo}
}

func (s *VoucherService) Create(ctx context.Context, in ports.VoucherInput) (*domain.Voucher, error) {
	return s.repo.Create(ctx, &domain.Voucher{
		Code:     strings.ToUpper(in.Code),
		Discount: in.Discount,
		Active:   in.Active,
	})
}

func (s *VoucherService) Get(ctx context.Context, id string) (*domain.Voucher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VoucherService) List(ctx context.Context) ([]domain.Voucher, error) {
	return s.repo.FindAll(ctx)
}

func (s *VoucherService) Update(ctx context.Context, id string, in ports.VoucherInput) (*domain.Voucher, error) {
	voucher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	voucher.Code = strings.ToUpper(in.Code)
	voucher.Discount = in.Discount
	voucher.Active = in.Active
	if err := s.repo.Update(ctx, voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

func (s *VoucherService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
