package menu

import (
	"errors"
	"fmt"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrDuplicateName is wrapped when an item or size tier name is already
	// taken, compared case-insensitively.
	ErrDuplicateName = errors.New("name already in use")
)

// Item is a sellable menu entry. Names are unique case-insensitively; the
// repository enforces that, the entity only rejects blank names.
//
// Items bound to a default key belong to the standard menu and are restored
// by ResetToDefaults. Items without one are custom and get deactivated by it.
type Item struct {
	id           kernel.UUID
	name         string
	description  string
	category     Category
	price        kernel.Money
	active       bool
	displayOrder *int
	imageURL     string
	defaultKey   *string

	guard guard.ConstructorGuard
}

// NewItem creates an active custom item.
//
// Example:
//
//	rice, err := menu.NewItem(kernel.NewUUID(), "White rice", menu.Base, kernel.MustMoney("5.00"))
//	if err != nil {
//	    return err
//	}
//	rice.SetDisplayOrder(1)
func NewItem(id kernel.UUID, name string, category Category, price kernel.Money) (*Item, error) {
	item := &Item{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}
	item.price = price

	return item, nil
}

// RestoreItem rebuilds an item from persistence.
func RestoreItem(
	id kernel.UUID,
	name, description string,
	category Category,
	price kernel.Money,
	active bool,
	displayOrder *int,
	imageURL string,
	defaultKey *string,
) (*Item, error) {
	item, err := NewItem(id, name, category, price)
	if err != nil {
		return nil, err
	}

	item.description = description
	item.active = active
	item.displayOrder = displayOrder
	item.imageURL = imageURL
	item.defaultKey = defaultKey

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Description() string {
	return i.description
}

func (i *Item) Category() Category {
	return i.category
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) IsActive() bool {
	return i.active
}

// DisplayOrder is nil for items listed after every ordered item.
func (i *Item) DisplayOrder() *int {
	return i.displayOrder
}

func (i *Item) ImageURL() string {
	return i.imageURL
}

func (i *Item) DefaultKey() *string {
	return i.defaultKey
}

func (i *Item) IsDefault() bool {
	return i.defaultKey != nil
}

func (i *Item) SetDescription(description string) {
	i.description = strings.TrimSpace(description)
}

func (i *Item) SetDisplayOrder(order int) {
	i.displayOrder = &order
}

func (i *Item) SetImageURL(url string) {
	i.imageURL = strings.TrimSpace(url)
}

// Activate reports whether the flag changed.
func (i *Item) Activate() bool {
	if i.active {
		return false
	}
	i.active = true
	return true
}

// Deactivate reports whether the flag changed.
func (i *Item) Deactivate() bool {
	if !i.active {
		return false
	}
	i.active = false
	return true
}

// RestoreFrom overwrites the item with the default entry it is bound to and
// reactivates it.
func (i *Item) RestoreFrom(def DefaultItem) error {
	if i.defaultKey == nil || *i.defaultKey != def.Key() {
		return errs.NewValueIsInvalidErrorWithCause(
			"default key", fmt.Errorf("item %s is not bound to default %q", i.id, def.Key()))
	}

	i.name = def.Name()
	i.description = def.Description()
	i.category = def.Category()
	i.price = def.Price()
	i.displayOrder = def.DisplayOrder()
	i.imageURL = def.ImageURL()
	i.active = true
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}
