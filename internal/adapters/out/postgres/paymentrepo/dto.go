// Package paymentrepo maps payments to the payments table.
package paymentrepo

import (
	"time"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO is a row of payments. order_id is unique: one payment per order.
type PaymentDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Method      string          `gorm:"type:varchar(16);not null"`
	Status      string          `gorm:"type:varchar(16);not null"`
	Reference   string          `gorm:"not null;default:''"`
	Note        string          `gorm:"not null;default:''"`
	PixTxID     string          `gorm:"column:pix_txid;not null;default:''"`
	CardPresent bool            `gorm:"not null"`
	ConfirmedAt *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	Version     int       `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          p.ID().Bytes(),
		OrderID:     p.OrderID().Bytes(),
		Amount:      p.Amount().Decimal(),
		Method:      p.Method().String(),
		Status:      p.Status().String(),
		Reference:   p.Reference(),
		Note:        p.Note(),
		PixTxID:     p.PixTxID(),
		CardPresent: p.CardPresent(),
		ConfirmedAt: p.ConfirmedAt(),
		CreatedAt:   p.CreatedAt(),
		Version:     p.Version(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	method, err := payment.ParseMethod(dto.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(payment.RestorePaymentParams{
		ID:          id,
		OrderID:     orderID,
		Amount:      amount,
		Method:      method,
		Status:      status,
		Reference:   dto.Reference,
		Note:        dto.Note,
		PixTxID:     dto.PixTxID,
		CardPresent: dto.CardPresent,
		ConfirmedAt: dto.ConfirmedAt,
		CreatedAt:   dto.CreatedAt,
		Version:     dto.Version,
	})
}
