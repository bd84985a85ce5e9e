package menu

import (
	"errors"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
)

// DefaultItem is an entry of the standard menu. Items whose default key
// matches Key are restored to these values by ResetToDefaults.
type DefaultItem struct {
	key          string
	name         string
	description  string
	category     Category
	price        kernel.Money
	displayOrder *int
	imageURL     string
}

func NewDefaultItem(
	key, name, description string,
	category Category,
	price kernel.Money,
	displayOrder *int,
	imageURL string,
) (DefaultItem, error) {
	key = strings.TrimSpace(key)
	name = strings.TrimSpace(name)

	var keyErr, nameErr error
	if key == "" {
		keyErr = errs.NewValueIsRequiredError("default key")
	}
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("default item name")
	}
	if err := errors.Join(keyErr, nameErr, category.Validate()); err != nil {
		return DefaultItem{}, err
	}

	return DefaultItem{
		key:          key,
		name:         name,
		description:  strings.TrimSpace(description),
		category:     category,
		price:        price,
		displayOrder: displayOrder,
		imageURL:     strings.TrimSpace(imageURL),
	}, nil
}

func (d DefaultItem) Key() string {
	return d.key
}

func (d DefaultItem) Name() string {
	return d.name
}

func (d DefaultItem) Description() string {
	return d.description
}

func (d DefaultItem) Category() Category {
	return d.category
}

func (d DefaultItem) Price() kernel.Money {
	return d.price
}

func (d DefaultItem) DisplayOrder() *int {
	return d.displayOrder
}

func (d DefaultItem) ImageURL() string {
	return d.imageURL
}

// ResetResult counts what ResetToDefaults changed.
type ResetResult struct {
	Restored    int
	Deactivated int
}

// ResetToDefaults restores every item bound to a known default key and
// deactivates every active custom item. Items bound to a key missing from
// defaults are left untouched. The changed items are returned so the caller
// can persist exactly those.
func ResetToDefaults(items []*Item, defaults []DefaultItem) (ResetResult, []*Item) {
	byKey := make(map[string]DefaultItem, len(defaults))
	for _, d := range defaults {
		byKey[d.Key()] = d
	}

	var (
		res     ResetResult
		changed []*Item
	)
	for _, item := range items {
		if !item.IsDefault() {
			if item.Deactivate() {
				res.Deactivated++
				changed = append(changed, item)
			}
			continue
		}

		def, ok := byKey[*item.DefaultKey()]
		if !ok {
			continue
		}
		if err := item.RestoreFrom(def); err != nil {
			continue
		}
		res.Restored++
		changed = append(changed, item)
	}

	return res, changed
}

// NewItemFromDefault creates an active item bound to def. Used when seeding
// the standard menu.
func NewItemFromDefault(id kernel.UUID, def DefaultItem) (*Item, error) {
	key := def.Key()
	return RestoreItem(id, def.Name(), def.Description(), def.Category(), def.Price(), true,
		def.DisplayOrder(), def.ImageURL(), &key)
}
