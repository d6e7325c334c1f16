package cakerepo

import (
	"context"
	"errors"

	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM cake order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cake order to the database, decorations included.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *cake.Cake) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cake order to the database. The decoration chain
// is append-only, so snapshots are replaced wholesale rather than diffed.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *cake.Cake) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Omit(clause.Associations).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&DecorationDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Decorations) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Decorations).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a cake order by its formatted identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*cake.Cake, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Decorations", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every cake order sorted by identifier.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*cake.Cake, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Decorations", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCategory retrieves all cake orders of one category sorted by
// identifier.
func (r *GormOrderRepository) GetAllByCategory(ctx context.Context, category cake.Category) ([]*cake.Cake, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Decorations", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("id").
		Find(&dtos, "category = ?", int(category)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*cake.Cake, error) {
	cakes := make([]*cake.Cake, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cakes = append(cakes, c)
	}

	return cakes, nil
}
