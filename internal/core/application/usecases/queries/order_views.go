package queries

import (
	"context"
	"database/sql"
	"time"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is an order as the kitchen and the customer see it.
type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Status       order.Status
	SizeName     *string
	Total        kernel.Money
	CancelReason *string
	CreatedAt    time.Time
	Delivery     DeliveryView
	Lines        []OrderLineView
}

type DeliveryView struct {
	Type             order.DeliveryType
	Address          order.Address
	Lat              *float64
	Lng              *float64
	Note             string
	BringCardMachine bool
	ChangeFor        *kernel.Money
}

// OrderLineView carries the item name as it is now; prices are the ones
// frozen on the order.
type OrderLineView struct {
	ItemID    kernel.UUID
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	Total     kernel.Money
}

const orderColumns = `
	id,
	customer_id,
	status,
	size_name,
	total,
	cancel_reason,
	created_at,
	delivery_type,
	delivery_street,
	delivery_number,
	delivery_complement,
	delivery_district,
	delivery_city,
	delivery_state,
	delivery_postal_code,
	delivery_lat,
	delivery_lng,
	delivery_note,
	delivery_bring_card_machine,
	delivery_change_for`

func scanOrder(rows *sql.Rows) (OrderView, error) {
	var (
		view              OrderView
		id, customerID    uuid.UUID
		status, delivType string
		total             decimal.Decimal
		changeFor         decimal.NullDecimal
		addr              order.Address
	)

	err := rows.Scan(
		&id,
		&customerID,
		&status,
		&view.SizeName,
		&total,
		&view.CancelReason,
		&view.CreatedAt,
		&delivType,
		&addr.Street,
		&addr.Number,
		&addr.Complement,
		&addr.District,
		&addr.City,
		&addr.State,
		&addr.PostalCode,
		&view.Delivery.Lat,
		&view.Delivery.Lng,
		&view.Delivery.Note,
		&view.Delivery.BringCardMachine,
		&changeFor,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderView{}, err
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, err
	}
	if view.Total, err = kernel.NewMoney(total); err != nil {
		return OrderView{}, err
	}
	if view.Delivery.Type, err = order.ParseDeliveryType(delivType); err != nil {
		return OrderView{}, err
	}
	view.Delivery.Address = addr
	if changeFor.Valid {
		m, err := kernel.NewMoney(changeFor.Decimal)
		if err != nil {
			return OrderView{}, err
		}
		view.Delivery.ChangeFor = &m
	}

	return view, nil
}

// attachLines loads the lines of every order in one round trip, in
// position order.
func attachLines(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	index := make(map[kernel.UUID]int, len(views))
	for i, v := range views {
		ids = append(ids, v.ID.Bytes())
		index[v.ID] = i
		views[i].Lines = make([]OrderLineView, 0)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			l.item_id,
			COALESCE(m.name, ''),
			l.quantity,
			l.unit_price,
			l.total
		FROM order_lines l
		LEFT JOIN menu_items m ON m.id = l.item_id
		WHERE l.order_id IN ?
		ORDER BY l.order_id, l.position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line             OrderLineView
			orderID, itemID  uuid.UUID
			unitPrice, total decimal.Decimal
		)
		if err := rows.Scan(&orderID, &itemID, &line.Name, &line.Quantity, &unitPrice, &total); err != nil {
			return err
		}

		oid, err := kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return err
		}
		if line.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return err
		}
		if line.Total, err = kernel.NewMoney(total); err != nil {
			return err
		}

		i := index[oid]
		views[i].Lines = append(views[i].Lines, line)
	}

	return rows.Err()
}
