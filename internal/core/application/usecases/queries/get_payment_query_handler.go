package queries

import (
	"context"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetPaymentQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the order has no payment yet.
func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (PaymentView, error) {
	if err := query.Validate(); err != nil {
		return PaymentView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			amount,
			method,
			status,
			reference,
			note,
			pix_txid,
			card_present,
			confirmed_at,
			created_at
		FROM payments
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return PaymentView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return PaymentView{}, err
		}
		return PaymentView{}, errs.NewObjectNotFoundError("payment for order", query.OrderID())
	}

	var (
		view           PaymentView
		id, orderID    uuid.UUID
		amount         decimal.Decimal
		method, status string
	)
	err = rows.Scan(
		&id,
		&orderID,
		&amount,
		&method,
		&status,
		&view.Reference,
		&view.Note,
		&view.PixTxID,
		&view.CardPresent,
		&view.ConfirmedAt,
		&view.CreatedAt,
	)
	if err != nil {
		return PaymentView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return PaymentView{}, err
	}
	if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return PaymentView{}, err
	}
	if view.Amount, err = kernel.NewMoney(amount); err != nil {
		return PaymentView{}, err
	}
	if view.Method, err = payment.ParseMethod(method); err != nil {
		return PaymentView{}, err
	}
	if view.Status, err = payment.ParseStatus(status); err != nil {
		return PaymentView{}, err
	}

	return view, nil
}
