package order

import (
	"fmt"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
)

// DeliveryType says how the customer gets the order.
type DeliveryType int

const (
	// Pickup is the default: the customer collects the order.
	Pickup DeliveryType = iota
	HomeDelivery
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		Pickup:       "RETIRADA",
		HomeDelivery: "ENTREGA",
	}
}

// ParseDeliveryType maps "" to Pickup.
func ParseDeliveryType(s string) (DeliveryType, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	if want == "" {
		return Pickup, nil
	}
	for t, name := range getDeliveryTypeStrings() {
		if name == want {
			return t, nil
		}
	}
	return Pickup, errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%q is not one of RETIRADA, ENTREGA", s))
}

func (t DeliveryType) String() string {
	if s, ok := getDeliveryTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Address is the snapshot of the customer address taken at order time.
type Address struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	PostalCode string
}

func (a Address) trimmed() Address {
	return Address{
		Street:     strings.TrimSpace(a.Street),
		Number:     strings.TrimSpace(a.Number),
		Complement: strings.TrimSpace(a.Complement),
		District:   strings.TrimSpace(a.District),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}
}

// DeliveryInfo is everything about handing the order over that does not
// affect its price.
type DeliveryInfo struct {
	deliveryType     DeliveryType
	address          Address
	location         *kernel.GeoPoint
	note             string
	bringCardMachine bool
	changeFor        *kernel.Money
}

// DeliveryInfoParams groups the optional fields of NewDeliveryInfo.
type DeliveryInfoParams struct {
	Type             DeliveryType
	Address          Address
	Location         *kernel.GeoPoint
	Note             string
	BringCardMachine bool
	ChangeFor        *kernel.Money
}

// NewDeliveryInfo requires a street for home delivery.
func NewDeliveryInfo(p DeliveryInfoParams) (DeliveryInfo, error) {
	if _, ok := getDeliveryTypeStrings()[p.Type]; !ok {
		return DeliveryInfo{}, errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%d is not valid", p.Type))
	}

	addr := p.Address.trimmed()
	if p.Type == HomeDelivery && addr.Street == "" {
		return DeliveryInfo{}, errs.NewValueIsRequiredError("delivery street")
	}
	if p.Location != nil {
		if err := p.Location.Validate(); err != nil {
			return DeliveryInfo{}, err
		}
	}

	return DeliveryInfo{
		deliveryType:     p.Type,
		address:          addr,
		location:         p.Location,
		note:             strings.TrimSpace(p.Note),
		bringCardMachine: p.BringCardMachine,
		changeFor:        p.ChangeFor,
	}, nil
}

// PickupInfo is the delivery info of a plain pickup order.
func PickupInfo() DeliveryInfo {
	return DeliveryInfo{deliveryType: Pickup}
}

func (d DeliveryInfo) Type() DeliveryType {
	return d.deliveryType
}

func (d DeliveryInfo) Address() Address {
	return d.address
}

func (d DeliveryInfo) Location() *kernel.GeoPoint {
	return d.location
}

func (d DeliveryInfo) Note() string {
	return d.note
}

func (d DeliveryInfo) BringCardMachine() bool {
	return d.bringCardMachine
}

func (d DeliveryInfo) ChangeFor() *kernel.Money {
	return d.changeFor
}
