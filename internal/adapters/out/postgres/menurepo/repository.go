package menurepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lunchbox/internal/adapters/out/postgres/pgutil"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Migrate creates the menu tables and the case-insensitive name indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&ItemDTO{},
		&DateOverrideDTO{},
		&WeeklyPatternDTO{},
		&DefaultItemDTO{},
		&SizeTierDTO{},
	); err != nil {
		return err
	}

	for _, stmt := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS " + ItemNameIndex + " ON menu_items (lower(name))",
		"CREATE UNIQUE INDEX IF NOT EXISTS " + TierNameIndex + " ON size_tiers (lower(name))",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// Add saves a new item. A clash on the name index becomes a validation error
// wrapping menu.ErrDuplicateName.
func (r *GormMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nameError(err, item.Name())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves every column of an existing item.
func (r *GormMenuRepository) Update(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return nameError(result.Error, item.Name())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetByIDs resolves ids in a single query. Unknown ids are skipped.
func (r *GormMenuRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	if len(ids) == 0 {
		return []*menu.Item{}, nil
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return itemsToDomain(dtos)
}

// GetAll returns every item by display order, items without one last, then
// by name.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Order("display_order ASC NULLS LAST").
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return itemsToDomain(dtos)
}

func (r *GormMenuRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("lower(name) = lower(?)", strings.TrimSpace(name)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LoadCalendar reads the overrides and weekly patterns of itemIDs.
func (r *GormMenuRepository) LoadCalendar(ctx context.Context, itemIDs []kernel.UUID) (menu.Calendar, error) {
	if len(itemIDs) == 0 {
		return menu.Calendar{}, nil
	}
	raw := rawIDs(itemIDs)

	var overrideDTOs []DateOverrideDTO
	if err := r.db.WithContext(ctx).Where("item_id IN ?", raw).Find(&overrideDTOs).Error; err != nil {
		return menu.Calendar{}, err
	}
	var patternDTOs []WeeklyPatternDTO
	if err := r.db.WithContext(ctx).Where("item_id IN ?", raw).Find(&patternDTOs).Error; err != nil {
		return menu.Calendar{}, err
	}

	overrides := make([]menu.DateOverride, 0, len(overrideDTOs))
	for _, dto := range overrideDTOs {
		o, err := overrideToDomain(dto)
		if err != nil {
			return menu.Calendar{}, err
		}
		overrides = append(overrides, o)
	}

	patterns := make([]menu.WeeklyPattern, 0, len(patternDTOs))
	for _, dto := range patternDTOs {
		p, err := patternToDomain(dto)
		if err != nil {
			return menu.Calendar{}, err
		}
		patterns = append(patterns, p)
	}

	return menu.NewCalendar(overrides, patterns)
}

// SaveDateOverride upserts on (item_id, date).
func (r *GormMenuRepository) SaveDateOverride(ctx context.Context, override menu.DateOverride) error {
	dto := overrideFromDomain(override)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}, {Name: "on_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"available", "max_qty"}),
	}).Create(&dto).Error
}

// SaveWeeklyPattern upserts on (item_id, weekday).
func (r *GormMenuRepository) SaveWeeklyPattern(ctx context.Context, pattern menu.WeeklyPattern) error {
	dto := patternFromDomain(pattern)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}, {Name: "weekday"}},
		DoUpdates: clause.AssignmentColumns([]string{"available"}),
	}).Create(&dto).Error
}

func (r *GormMenuRepository) GetDefaults(ctx context.Context) ([]menu.DefaultItem, error) {
	var dtos []DefaultItemDTO
	if err := r.db.WithContext(ctx).Order("display_order ASC NULLS LAST").Order("key").Find(&dtos).Error; err != nil {
		return nil, err
	}

	defaults := make([]menu.DefaultItem, 0, len(dtos))
	for _, dto := range dtos {
		d, err := defaultToDomain(dto)
		if err != nil {
			return nil, err
		}
		defaults = append(defaults, d)
	}
	return defaults, nil
}

// SeedDefaults stores defaults, replacing entries with the same key, and
// creates an active item for every default no item is bound to yet. A
// default whose name is taken by a custom item gets no item. It returns the
// number of items created.
func (r *GormMenuRepository) SeedDefaults(ctx context.Context, defaults []menu.DefaultItem) (int, error) {
	if len(defaults) == 0 {
		return 0, nil
	}

	dtos := make([]DefaultItemDTO, 0, len(defaults))
	for _, d := range defaults {
		dtos = append(dtos, defaultFromDomain(d))
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&dtos).Error; err != nil {
		return 0, err
	}

	var bound []string
	if err := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("default_key IS NOT NULL").
		Pluck("default_key", &bound).Error; err != nil {
		return 0, err
	}
	isBound := make(map[string]struct{}, len(bound))
	for _, k := range bound {
		isBound[k] = struct{}{}
	}

	created := 0
	for _, d := range defaults {
		if _, ok := isBound[d.Key()]; ok {
			continue
		}
		taken, err := r.ExistsByName(ctx, d.Name())
		if err != nil {
			return created, err
		}
		if taken {
			continue
		}

		item, err := menu.NewItemFromDefault(kernel.NewUUID(), d)
		if err != nil {
			return created, err
		}
		if err = r.Add(ctx, item); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func itemsToDomain(dtos []ItemDTO) ([]*menu.Item, error) {
	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}

func nameError(err error, name string) error {
	if pgutil.IsUniqueViolation(err, ItemNameIndex) {
		return errs.NewValueIsInvalidErrorWithCause("item name", fmt.Errorf("%w: %q", menu.ErrDuplicateName, name))
	}
	return err
}
