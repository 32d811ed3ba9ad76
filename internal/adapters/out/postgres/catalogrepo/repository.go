package catalogrepo

import (
	"context"
	"errors"
	"slices"

	"bookstore/internal/adapters/out/postgres/integrity"
	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// store holds what the four repositories share: the connection, which is the
// open transaction inside a unit of work, and the tracker.
type store struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func (s store) create(ctx context.Context, object string, dto any, aggregate any) error {
	if err := s.db.WithContext(ctx).Create(dto).Error; err != nil {
		return integrity.TranslateError(err, object)
	}
	s.tracker.TrackAggregate(aggregate)
	return nil
}

// update writes every column, zero values included.
func (s store) update(ctx context.Context, object string, key any, dto any, aggregate any) error {
	result := s.db.WithContext(ctx).Model(dto).Select("*").Updates(dto)
	if result.Error != nil {
		return integrity.TranslateError(result.Error, object)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(object, key)
	}
	s.tracker.TrackAggregate(aggregate)
	return nil
}

func (s store) get(ctx context.Context, object, keyColumn string, key any, dto any) error {
	err := s.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: keyColumn}, Value: key}).Take(dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(object, key)
	}
	return integrity.TranslateError(err, object)
}

// delete enforces the deletion policies of table before removing the row.
func (s store) delete(ctx context.Context, object, table, keyColumn string, key any, dto any) error {
	db := s.db.WithContext(ctx)
	match := clause.Eq{Column: clause.Column{Name: keyColumn}, Value: key}

	var count int64
	if err := db.Model(dto).Where(match).Count(&count).Error; err != nil {
		return integrity.TranslateError(err, object)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(object, key)
	}

	if err := integrity.EnforceOnDelete(ctx, s.db, table, key); err != nil {
		return err
	}

	if err := db.Where(match).Delete(dto).Error; err != nil {
		return integrity.TranslateError(err, object)
	}
	return nil
}

type GormCategoryRepository struct {
	store
}

func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{store{db: db, tracker: tracker}}
}

// Add inserts the category and assigns the generated id to it.
func (r *GormCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := categoryFromDomain(c)
	if err := r.create(ctx, "category", &dto, c); err != nil {
		return err
	}
	return c.AssignID(dto.ID)
}

func (r *GormCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := categoryFromDomain(c)
	return r.update(ctx, "category", c.ID(), &dto, c)
}

func (r *GormCategoryRepository) Get(ctx context.Context, id int64) (*catalog.Category, error) {
	var dto CategoryDTO
	if err := r.get(ctx, "category", "id", id, &dto); err != nil {
		return nil, err
	}
	return categoryToDomain(dto)
}

// Delete leaves the category's products uncategorised.
func (r *GormCategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, "category", CategoryDTO{}.TableName(), "id", id, &CategoryDTO{})
}

type GormCustomerRepository struct {
	store
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{store{db: db, tracker: tracker}}
}

func (r *GormCustomerRepository) Add(ctx context.Context, c *catalog.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := customerFromDomain(c)
	return r.create(ctx, "customer", &dto, c)
}

func (r *GormCustomerRepository) Update(ctx context.Context, c *catalog.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := customerFromDomain(c)
	return r.update(ctx, "customer", dto.NationalID, &dto, c)
}

func (r *GormCustomerRepository) Get(ctx context.Context, nationalID kernel.NationalID) (*catalog.Customer, error) {
	var dto CustomerDTO
	if err := r.get(ctx, "customer", "national_id", nationalID.String(), &dto); err != nil {
		return nil, err
	}
	return customerToDomain(dto)
}

// Delete fails with a referential integrity violation while orders reference the customer.
func (r *GormCustomerRepository) Delete(ctx context.Context, nationalID kernel.NationalID) error {
	return r.delete(ctx, "customer", CustomerDTO{}.TableName(), "national_id", nationalID.String(), &CustomerDTO{})
}

type GormProductRepository struct {
	store
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{store{db: db, tracker: tracker}}
}

func (r *GormProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := productFromDomain(p)
	return r.create(ctx, "product", &dto, p)
}

func (r *GormProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := productFromDomain(p)
	return r.update(ctx, "product", dto.SerialNumber, &dto, p)
}

func (r *GormProductRepository) Get(ctx context.Context, serialNumber string) (*catalog.Product, error) {
	var dto ProductDTO
	if err := r.get(ctx, "product", "serial_number", serialNumber, &dto); err != nil {
		return nil, err
	}
	return productToDomain(dto)
}

// GetForUpdate locks the rows in serial number order so that concurrent
// registrations touching the same products queue up instead of deadlocking.
func (r *GormProductRepository) GetForUpdate(ctx context.Context, serialNumbers []string) (map[string]*catalog.Product, error) {
	sorted := slices.Clone(serialNumbers)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("serial_number = ANY(?)", pq.Array(sorted)).
		Order("serial_number").
		Find(&dtos).Error
	if err != nil {
		return nil, integrity.TranslateError(err, "product")
	}

	products := make(map[string]*catalog.Product, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products[p.SerialNumber()] = p
	}
	return products, nil
}

// Delete fails with a referential integrity violation while order lines reference the product.
func (r *GormProductRepository) Delete(ctx context.Context, serialNumber string) error {
	return r.delete(ctx, "product", ProductDTO{}.TableName(), "serial_number", serialNumber, &ProductDTO{})
}

type GormDeliveryPersonRepository struct {
	store
}

func NewGormDeliveryPersonRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPersonRepository {
	return &GormDeliveryPersonRepository{store{db: db, tracker: tracker}}
}

func (r *GormDeliveryPersonRepository) Add(ctx context.Context, d *catalog.DeliveryPerson) error {
	if err := d.Validate(); err != nil {
		return err
	}
	dto := deliveryPersonFromDomain(d)
	return r.create(ctx, "delivery person", &dto, d)
}

func (r *GormDeliveryPersonRepository) Update(ctx context.Context, d *catalog.DeliveryPerson) error {
	if err := d.Validate(); err != nil {
		return err
	}
	dto := deliveryPersonFromDomain(d)
	return r.update(ctx, "delivery person", dto.NationalID, &dto, d)
}

func (r *GormDeliveryPersonRepository) Get(ctx context.Context, nationalID kernel.NationalID) (*catalog.DeliveryPerson, error) {
	var dto DeliveryPersonDTO
	if err := r.get(ctx, "delivery person", "national_id", nationalID.String(), &dto); err != nil {
		return nil, err
	}
	return deliveryPersonToDomain(dto)
}

// Delete keeps the person's orders and clears their delivery person.
func (r *GormDeliveryPersonRepository) Delete(ctx context.Context, nationalID kernel.NationalID) error {
	return r.delete(ctx, "delivery person", DeliveryPersonDTO{}.TableName(), "national_id", nationalID.String(), &DeliveryPersonDTO{})
}
