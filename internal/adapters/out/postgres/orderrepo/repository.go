package orderrepo

import (
	"context"
	"errors"

	"bookstore/internal/adapters/out/postgres/integrity"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the header, takes the generated number, then inserts the lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if len(aggregate.Lines()) == 0 {
		return errs.ErrEmptyOrder
	}

	db := r.db.WithContext(ctx)
	header, lines := fromDomain(aggregate)
	if err := db.Create(&header).Error; err != nil {
		return integrity.TranslateError(err, "order")
	}

	for i := range lines {
		lines[i].OrderNumber = header.Number
	}
	if err := db.Create(&lines).Error; err != nil {
		return integrity.TranslateError(err, "order line")
	}

	if err := aggregate.AssignNumber(header.Number); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes status, delivery date, notes and delivery person.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	header, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ?", header.Number).
		Updates(map[string]any{
			"status":                      header.Status,
			"delivery_date":               header.DeliveryDate,
			"notes":                       header.Notes,
			"delivery_person_national_id": header.DeliveryPersonNationalID,
		})
	if result.Error != nil {
		return integrity.TranslateError(result.Error, "order")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", header.Number)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, number int64) (*order.Order, error) {
	var header OrderDTO
	err := r.db.WithContext(ctx).Take(&header, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", number)
	}
	if err != nil {
		return nil, integrity.TranslateError(err, "order")
	}

	return r.withLines(ctx, header)
}

// GetPendingForUpdate locks the header row. Orders in any other status are
// reported as not found so that a concurrent second confirmation fails cleanly.
func (r *GormOrderRepository) GetPendingForUpdate(ctx context.Context, number int64) (*order.Order, error) {
	var header OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Take(&header, "number = ? AND status = ?", number, int(order.Pending)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("pending order", number)
	}
	if err != nil {
		return nil, integrity.TranslateError(err, "order")
	}

	return r.withLines(ctx, header)
}

// Delete removes the order; its lines go with it.
func (r *GormOrderRepository) Delete(ctx context.Context, number int64) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&OrderDTO{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return integrity.TranslateError(err, "order")
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", number)
	}

	if err := integrity.EnforceOnDelete(ctx, r.db, OrderDTO{}.TableName(), number); err != nil {
		return err
	}

	if err := db.Delete(&OrderDTO{}, "number = ?", number).Error; err != nil {
		return integrity.TranslateError(err, "order")
	}
	return nil
}

func (r *GormOrderRepository) withLines(ctx context.Context, header OrderDTO) (*order.Order, error) {
	var lines []OrderLineDTO
	err := r.db.WithContext(ctx).
		Where("order_number = ?", header.Number).
		Order("position").
		Find(&lines).Error
	if err != nil {
		return nil, integrity.TranslateError(err, "order line")
	}

	return toDomain(header, lines)
}
