package domain

import "errors"

var (
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrVoucherExists   = errors.New("voucher already exists")
	ErrVoucherInactive = errors.New("voucher is not active")
)

// Voucher is a percentage discount code applied at booking time.
type Voucher struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Code     string `json:"code" bson:"code"`
	Discount int    `json:"discount" bson:"discount"`
	Active   bool   `json:"active" bson:"active"`
}

// Apply returns price reduced by the voucher's discount percentage.
func (v Voucher) Apply(price float64) float64 {
	return price * (1 - float64(v.Discount)/100)
}
