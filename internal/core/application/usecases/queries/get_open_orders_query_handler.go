package queries

import (
	"context"

	"lunchbox/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

func (h GetOpenOrdersQueryHandler) Handle(ctx context.Context, query GetOpenOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := h.scanOpen(ctx)
	if err != nil {
		return nil, err
	}

	if err := attachLines(ctx, h.db, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (h GetOpenOrdersQueryHandler) scanOpen(ctx context.Context) ([]OrderView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status NOT IN ?
		ORDER BY created_at, id
	`, []string{order.Delivered.String(), order.Cancelled.String()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, rows.Err()
}
