package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

// OrderService creates and manages bookings. Pricing is fixed at creation:
// room price per day times the booked days, reduced by an active voucher.
type OrderService struct {
	repo     ports.OrderRepository
	rooms    ports.RoomRepository
	vouchers ports.VoucherRepository
	logger   zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, rooms ports.RoomRepository, vouchers ports.VoucherRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, rooms: rooms, vouchers: vouchers, logger: logger}
}

func (s *OrderService) Create(ctx context.Context, req ports.Requester, in ports.CreateOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	if !in.StartDate.After(now) {
		return nil, domain.ErrInvalidBookingDates
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, domain.ErrInvalidBookingDates
	}

	room, err := s.rooms.FindByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	days := math.Ceil(in.EndDate.Sub(in.StartDate).Hours() / 24)
	price := room.Price * days

	code := strings.ToUpper(in.VoucherCode)
	if code != "" {
		voucher, err := s.vouchers.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if !voucher.Active {
			return nil, domain.ErrVoucherInactive
		}
		price = voucher.Apply(price)
	}

	order := &domain.Order{
		Reference:   uuid.NewString(),
		UserID:      req.UserID,
		RoomID:      in.RoomID,
		EmployeeID:  in.EmployeeID,
		StartDate:   in.StartDate.UTC(),
		EndDate:     in.EndDate.UTC(),
		TotalPrice:  price,
		VoucherCode: code,
		Status:      domain.OrderConfirmed,
		CreatedAt:   now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", in.RoomID).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().
		Str("reference", created.Reference).
		Str("user_id", req.UserID).
		Float64("total_price", created.TotalPrice).
		Msg("order created")

	return created, nil
}

// Get returns an order; non-admins only see their own.
func (s *OrderService) Get(ctx context.Context, req ports.Requester, id string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Role != domain.RoleAdmin && order.UserID != req.UserID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// List returns all orders for admins, own orders for everyone else.
func (s *OrderService) List(ctx context.Context, req ports.Requester) ([]domain.Order, error) {
	if req.Role == domain.RoleAdmin {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByUser(ctx, req.UserID)
}

func (s *OrderService) Cancel(ctx context.Context, req ports.Requester, id string) (*domain.Order, error) {
	order, err := s.Get(ctx, req, id)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderCancelled {
		return nil, domain.ErrOrderCancelled
	}
	order.Status = domain.OrderCancelled
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info().Str("reference", order.Reference).Msg("order cancelled")
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrOrderNotFound) {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to delete order")
	}
	return err
}
