// Package orderrepo maps order aggregates to the orders and order_lines
// tables.
package orderrepo

import (
	"time"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of orders. Status is stored by its wire name so read
// queries can filter on it directly.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	SizeName     *string         `gorm:"type:varchar(64)"`
	Total        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status       string          `gorm:"type:varchar(16);not null;index"`
	CancelReason *string
	Delivery     DeliveryDTO    `gorm:"embedded;embeddedPrefix:delivery_"`
	CreatedAt    time.Time      `gorm:"not null;index"`
	Version      int            `gorm:"not null"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO is the delivery snapshot embedded in the orders row.
type DeliveryDTO struct {
	Type             string `gorm:"type:varchar(16);not null"`
	Street           string
	Number           string
	Complement       string
	District         string
	City             string
	State            string
	PostalCode       string
	Lat              *float64
	Lng              *float64
	Note             string
	BringCardMachine bool
	ChangeFor        *decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// OrderLineDTO is a row of order_lines. Position keeps the line order.
type OrderLineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   id,
			Position:  i + 1,
			ItemID:    l.ItemID().Bytes(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().Decimal(),
			Total:     l.Total().Decimal(),
		})
	}

	return OrderDTO{
		ID:           id,
		CustomerID:   o.CustomerID().Bytes(),
		SizeName:     o.SizeName(),
		Total:        o.Total().Decimal(),
		Status:       o.Status().String(),
		CancelReason: o.CancelReason(),
		Delivery:     deliveryFromDomain(o.Delivery()),
		CreatedAt:    o.CreatedAt(),
		Version:      o.Version(),
		Lines:        lines,
	}
}

func deliveryFromDomain(d order.DeliveryInfo) DeliveryDTO {
	addr := d.Address()
	dto := DeliveryDTO{
		Type:             d.Type().String(),
		Street:           addr.Street,
		Number:           addr.Number,
		Complement:       addr.Complement,
		District:         addr.District,
		City:             addr.City,
		State:            addr.State,
		PostalCode:       addr.PostalCode,
		Note:             d.Note(),
		BringCardMachine: d.BringCardMachine(),
	}
	if loc := d.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		dto.Lat, dto.Lng = &lat, &lng
	}
	if change := d.ChangeFor(); change != nil {
		v := change.Decimal()
		dto.ChangeFor = &v
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, dto.SizeName, lines, total, status, dto.CancelReason,
		delivery, dto.CreatedAt, dto.Version)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.Line{}, err
	}
	unit, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Line{}, err
	}
	return order.RestoreLine(itemID, dto.Quantity, unit, total)
}

func deliveryToDomain(dto DeliveryDTO) (order.DeliveryInfo, error) {
	deliveryType, err := order.ParseDeliveryType(dto.Type)
	if err != nil {
		return order.DeliveryInfo{}, err
	}

	params := order.DeliveryInfoParams{
		Type: deliveryType,
		Address: order.Address{
			Street:     dto.Street,
			Number:     dto.Number,
			Complement: dto.Complement,
			District:   dto.District,
			City:       dto.City,
			State:      dto.State,
			PostalCode: dto.PostalCode,
		},
		Note:             dto.Note,
		BringCardMachine: dto.BringCardMachine,
	}
	if dto.Lat != nil && dto.Lng != nil {
		loc, locErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if locErr != nil {
			return order.DeliveryInfo{}, locErr
		}
		params.Location = &loc
	}
	if dto.ChangeFor != nil {
		change, changeErr := kernel.NewMoney(*dto.ChangeFor)
		if changeErr != nil {
			return order.DeliveryInfo{}, changeErr
		}
		params.ChangeFor = &change
	}

	return order.NewDeliveryInfo(params)
}
