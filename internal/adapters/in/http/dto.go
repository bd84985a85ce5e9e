package http

import (
	"time"

	"lunchbox/internal/core/application/usecases/queries"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LineRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type QuoteRequest struct {
	Items []LineRequest `json:"items"`
	Size  string        `json:"size"`
	Date  string        `json:"date"`
}

type AddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type DeliveryRequest struct {
	Type             string           `json:"type"`
	Address          AddressRequest   `json:"address"`
	Lat              *float64         `json:"lat"`
	Lng              *float64         `json:"lng"`
	Note             string           `json:"note"`
	BringCardMachine bool             `json:"bringCardMachine"`
	ChangeFor        *decimal.Decimal `json:"changeFor"`
}

type CreateOrderRequest struct {
	CustomerID string          `json:"customerId"`
	Items      []LineRequest   `json:"items"`
	Size       string          `json:"size"`
	Date       string          `json:"date"`
	Delivery   DeliveryRequest `json:"delivery"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type PaymentRequest struct {
	Method      string           `json:"method"`
	Amount      *decimal.Decimal `json:"amount"`
	Reference   string           `json:"reference"`
	Note        string           `json:"note"`
	PixTxID     string           `json:"pixTxid"`
	CardPresent *bool            `json:"cardPresent"`
}

type RefusePaymentRequest struct {
	Reason string `json:"reason"`
}

type CreateMenuItemRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Active       *bool           `json:"active"`
	DisplayOrder *int            `json:"displayOrder"`
	ImageURL     string          `json:"imageUrl"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type DateAvailabilityRequest struct {
	Available bool `json:"available"`
	MaxQty    *int `json:"maxQty"`
}

type WeeklyAvailabilityRequest struct {
	Available bool `json:"available"`
}

type CreateSizeTierRequest struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"basePrice"`
	MaxMixes  int             `json:"maxMixes"`
	MaxSides  int             `json:"maxSides"`
}

type StrategyRequest struct {
	Strategy string `json:"strategy"`
}

type PricingConfigRequest struct {
	IncludedMixCount int              `json:"includedMixCount"`
	ExtraMixPrice    decimal.Decimal  `json:"extraMixPrice"`
	DefaultSidePrice *decimal.Decimal `json:"defaultSidePrice"`
}

type BreakdownLine struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}

type Quote struct {
	Lines     []BreakdownLine `json:"lines"`
	MixCount  int             `json:"mixCount"`
	SideCount int             `json:"sideCount"`
	Strategy  string          `json:"strategy"`
	Size      *string         `json:"size"`
	Subtotal  string          `json:"subtotal"`
}

type OrderLine struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
}

type Delivery struct {
	Type             string         `json:"type"`
	Address          AddressRequest `json:"address"`
	Lat              *float64       `json:"lat,omitempty"`
	Lng              *float64       `json:"lng,omitempty"`
	Note             string         `json:"note,omitempty"`
	BringCardMachine bool           `json:"bringCardMachine"`
	ChangeFor        *string        `json:"changeFor,omitempty"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customerId"`
	Status       string      `json:"status"`
	Size         *string     `json:"size"`
	Total        string      `json:"total"`
	CancelReason *string     `json:"cancelReason,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	Delivery     Delivery    `json:"delivery"`
	Lines        []OrderLine `json:"lines"`
}

type Payment struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"orderId"`
	Amount      string     `json:"amount"`
	Method      string     `json:"method"`
	Status      string     `json:"status"`
	Reference   string     `json:"reference,omitempty"`
	Note        string     `json:"note,omitempty"`
	PixTxID     string     `json:"pixTxid,omitempty"`
	CardPresent bool       `json:"cardPresent"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type MenuItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	Price        string `json:"price"`
	Active       bool   `json:"active"`
	DisplayOrder *int   `json:"displayOrder,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Available    *bool  `json:"available,omitempty"`
	MaxQty       *int   `json:"maxQty,omitempty"`
}

type SizeTier struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice string `json:"basePrice"`
	MaxMixes  int    `json:"maxMixes"`
	MaxSides  int    `json:"maxSides"`
}

type Menu struct {
	Items        []MenuItem `json:"items"`
	Sizes        []SizeTier `json:"sizes"`
	Strategy     string     `json:"strategy"`
	SizeRequired bool       `json:"sizeRequired"`
}

type PricingConfig struct {
	Strategy         string  `json:"strategy"`
	IncludedMixCount int     `json:"includedMixCount"`
	ExtraMixPrice    string  `json:"extraMixPrice"`
	DefaultSidePrice *string `json:"defaultSidePrice"`
}

type ResetResult struct {
	Restored    int `json:"restored"`
	Deactivated int `json:"deactivated"`
}

func moneyPtr(m *kernel.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

func toQuote(b pricing.Breakdown) Quote {
	lines := make([]BreakdownLine, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, BreakdownLine{
			ItemID:    l.ItemID.String(),
			Name:      l.Name,
			Category:  l.Category.String(),
			UnitPrice: l.UnitPrice.String(),
			Quantity:  l.Quantity,
			Total:     l.Total.String(),
		})
	}
	return Quote{
		Lines:     lines,
		MixCount:  b.MixCount,
		SideCount: b.SideCount,
		Strategy:  b.Strategy.String(),
		Size:      b.SizeName,
		Subtotal:  b.Subtotal.String(),
	}
}

func toAddress(a order.Address) AddressRequest {
	return AddressRequest{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
	}
}

// fromAggregate renders a freshly written order. Item names are not part of
// the aggregate and are left out.
func fromAggregate(o *order.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLine{
			ItemID:    l.ItemID().String(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().String(),
			Total:     l.Total().String(),
		})
	}

	d := o.Delivery()
	delivery := Delivery{
		Type:             d.Type().String(),
		Address:          toAddress(d.Address()),
		Note:             d.Note(),
		BringCardMachine: d.BringCardMachine(),
		ChangeFor:        moneyPtr(d.ChangeFor()),
	}
	if loc := d.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		delivery.Lat, delivery.Lng = &lat, &lng
	}

	return Order{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		Status:       o.Status().String(),
		Size:         o.SizeName(),
		Total:        o.Total().String(),
		CancelReason: o.CancelReason(),
		CreatedAt:    o.CreatedAt(),
		Delivery:     delivery,
		Lines:        lines,
	}
}

func fromView(v queries.OrderView) Order {
	lines := make([]OrderLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, OrderLine{
			ItemID:    l.ItemID.String(),
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			Total:     l.Total.String(),
		})
	}

	return Order{
		ID:           v.ID.String(),
		CustomerID:   v.CustomerID.String(),
		Status:       v.Status.String(),
		Size:         v.SizeName,
		Total:        v.Total.String(),
		CancelReason: v.CancelReason,
		CreatedAt:    v.CreatedAt,
		Delivery: Delivery{
			Type:             v.Delivery.Type.String(),
			Address:          toAddress(v.Delivery.Address),
			Lat:              v.Delivery.Lat,
			Lng:              v.Delivery.Lng,
			Note:             v.Delivery.Note,
			BringCardMachine: v.Delivery.BringCardMachine,
			ChangeFor:        moneyPtr(v.Delivery.ChangeFor),
		},
		Lines: lines,
	}
}

func fromPayment(p *payment.Payment) Payment {
	return Payment{
		ID:          p.ID().String(),
		OrderID:     p.OrderID().String(),
		Amount:      p.Amount().String(),
		Method:      p.Method().String(),
		Status:      p.Status().String(),
		Reference:   p.Reference(),
		Note:        p.Note(),
		PixTxID:     p.PixTxID(),
		CardPresent: p.CardPresent(),
		ConfirmedAt: p.ConfirmedAt(),
		CreatedAt:   p.CreatedAt(),
	}
}

func fromPaymentView(v queries.PaymentView) Payment {
	return Payment{
		ID:          v.ID.String(),
		OrderID:     v.OrderID.String(),
		Amount:      v.Amount.String(),
		Method:      v.Method.String(),
		Status:      v.Status.String(),
		Reference:   v.Reference,
		Note:        v.Note,
		PixTxID:     v.PixTxID,
		CardPresent: v.CardPresent,
		ConfirmedAt: v.ConfirmedAt,
		CreatedAt:   v.CreatedAt,
	}
}

func fromItem(i *menu.Item) MenuItem {
	return MenuItem{
		ID:           i.ID().String(),
		Name:         i.Name(),
		Description:  i.Description(),
		Category:     i.Category().String(),
		Price:        i.Price().String(),
		Active:       i.IsActive(),
		DisplayOrder: i.DisplayOrder(),
		ImageURL:     i.ImageURL(),
	}
}

func fromTier(t menu.SizeTier) SizeTier {
	return SizeTier{
		ID:        t.ID().String(),
		Name:      t.Name(),
		BasePrice: t.BasePrice().String(),
		MaxMixes:  t.MaxMixes(),
		MaxSides:  t.MaxSides(),
	}
}

func fromMenu(res queries.GetMenuQueryResponse, dated bool) Menu {
	items := make([]MenuItem, 0, len(res.Items))
	for _, v := range res.Items {
		item := MenuItem{
			ID:           v.ID.String(),
			Name:         v.Name,
			Description:  v.Description,
			Category:     v.Category.String(),
			Price:        v.Price.String(),
			Active:       true,
			DisplayOrder: v.DisplayOrder,
			ImageURL:     v.ImageURL,
			MaxQty:       v.MaxQty,
		}
		if dated {
			available := v.Available
			item.Available = &available
		}
		items = append(items, item)
	}

	sizes := make([]SizeTier, 0, len(res.Tiers))
	for _, t := range res.Tiers {
		sizes = append(sizes, SizeTier{
			ID:        t.ID.String(),
			Name:      t.Name,
			BasePrice: t.BasePrice.String(),
			MaxMixes:  t.MaxMixes,
			MaxSides:  t.MaxSides,
		})
	}

	return Menu{Items: items, Sizes: sizes, Strategy: res.Strategy, SizeRequired: res.SizeRequired}
}

func fromConfig(c *pricing.Config) PricingConfig {
	return PricingConfig{
		Strategy:         c.Strategy().String(),
		IncludedMixCount: c.IncludedMixCount(),
		ExtraMixPrice:    c.ExtraMixPrice().String(),
		DefaultSidePrice: moneyPtr(c.DefaultSidePrice()),
	}
}
