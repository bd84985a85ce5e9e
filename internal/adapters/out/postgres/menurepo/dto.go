// Package menurepo persists menu items, their availability calendar, the
// standard menu defaults and the size tiers.
package menurepo

import (
	"time"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Unique index names, created by the migration on lower(name).
const (
	ItemNameIndex = "idx_menu_items_lower_name"
	TierNameIndex = "idx_size_tiers_lower_name"
)

// ItemDTO is a row of menu_items.
type ItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"not null"`
	Description  string          `gorm:"not null;default:''"`
	Category     string          `gorm:"type:varchar(8);not null;index"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Active       bool            `gorm:"not null;index"`
	DisplayOrder *int
	ImageURL     string  `gorm:"not null;default:''"`
	DefaultKey   *string `gorm:"uniqueIndex"`
}

func (ItemDTO) TableName() string {
	return "menu_items"
}

// DateOverrideDTO is a row of menu_item_date_overrides, one per (item, date).
type DateOverrideDTO struct {
	ItemID    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Date      datatypes.Date `gorm:"column:on_date;primaryKey"`
	Available bool           `gorm:"not null"`
	MaxQty    *int
}

func (DateOverrideDTO) TableName() string {
	return "menu_item_date_overrides"
}

// WeeklyPatternDTO is a row of menu_item_weekly_patterns, one per
// (item, ISO weekday).
type WeeklyPatternDTO struct {
	ItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Weekday   int16     `gorm:"primaryKey;check:weekday BETWEEN 1 AND 7"`
	Available bool      `gorm:"not null"`
}

func (WeeklyPatternDTO) TableName() string {
	return "menu_item_weekly_patterns"
}

// DefaultItemDTO is a row of menu_defaults.
type DefaultItemDTO struct {
	Key          string          `gorm:"primaryKey"`
	Name         string          `gorm:"not null"`
	Description  string          `gorm:"not null;default:''"`
	Category     string          `gorm:"type:varchar(8);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DisplayOrder *int
	ImageURL     string `gorm:"not null;default:''"`
}

func (DefaultItemDTO) TableName() string {
	return "menu_defaults"
}

// SizeTierDTO is a row of size_tiers.
type SizeTierDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"not null"`
	BasePrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	MaxMixes  int             `gorm:"not null"`
	MaxSides  int             `gorm:"not null"`
}

func (SizeTierDTO) TableName() string {
	return "size_tiers"
}

func itemFromDomain(item *menu.Item) ItemDTO {
	return ItemDTO{
		ID:           item.ID().Bytes(),
		Name:         item.Name(),
		Description:  item.Description(),
		Category:     item.Category().String(),
		Price:        item.Price().Decimal(),
		Active:       item.IsActive(),
		DisplayOrder: item.DisplayOrder(),
		ImageURL:     item.ImageURL(),
		DefaultKey:   item.DefaultKey(),
	}
}

func itemToDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	category, err := menu.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, dto.Name, dto.Description, category, price, dto.Active,
		dto.DisplayOrder, dto.ImageURL, dto.DefaultKey)
}

func overrideFromDomain(o menu.DateOverride) DateOverrideDTO {
	return DateOverrideDTO{
		ItemID:    o.ItemID().Bytes(),
		Date:      datatypes.Date(o.Date().Time()),
		Available: o.Available(),
		MaxQty:    o.MaxQty(),
	}
}

func overrideToDomain(dto DateOverrideDTO) (menu.DateOverride, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return menu.DateOverride{}, err
	}
	t := time.Time(dto.Date)
	date, err := kernel.NewDate(t.Year(), t.Month(), t.Day())
	if err != nil {
		return menu.DateOverride{}, err
	}
	return menu.NewDateOverride(itemID, date, dto.Available, dto.MaxQty)
}

func patternFromDomain(p menu.WeeklyPattern) WeeklyPatternDTO {
	return WeeklyPatternDTO{
		ItemID:    p.ItemID().Bytes(),
		Weekday:   int16(p.Weekday()),
		Available: p.Available(),
	}
}

func patternToDomain(dto WeeklyPatternDTO) (menu.WeeklyPattern, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return menu.WeeklyPattern{}, err
	}
	weekday, err := kernel.NewWeekday(int(dto.Weekday))
	if err != nil {
		return menu.WeeklyPattern{}, err
	}
	return menu.NewWeeklyPattern(itemID, weekday, dto.Available)
}

func defaultFromDomain(d menu.DefaultItem) DefaultItemDTO {
	return DefaultItemDTO{
		Key:          d.Key(),
		Name:         d.Name(),
		Description:  d.Description(),
		Category:     d.Category().String(),
		Price:        d.Price().Decimal(),
		DisplayOrder: d.DisplayOrder(),
		ImageURL:     d.ImageURL(),
	}
}

func defaultToDomain(dto DefaultItemDTO) (menu.DefaultItem, error) {
	category, err := menu.ParseCategory(dto.Category)
	if err != nil {
		return menu.DefaultItem{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return menu.DefaultItem{}, err
	}
	return menu.NewDefaultItem(dto.Key, dto.Name, dto.Description, category, price, dto.DisplayOrder, dto.ImageURL)
}

func tierFromDomain(t menu.SizeTier) SizeTierDTO {
	return SizeTierDTO{
		ID:        t.ID().Bytes(),
		Name:      t.Name(),
		BasePrice: t.BasePrice().Decimal(),
		MaxMixes:  t.MaxMixes(),
		MaxSides:  t.MaxSides(),
	}
}

func tierToDomain(dto SizeTierDTO) (menu.SizeTier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.SizeTier{}, err
	}
	price, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return menu.SizeTier{}, err
	}
	return menu.NewSizeTier(id, dto.Name, price, dto.MaxMixes, dto.MaxSides)
}
