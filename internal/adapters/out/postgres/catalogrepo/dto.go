// Package catalogrepo persists categories, customers, products and delivery
// personnel. Each aggregate maps onto one table.
package catalogrepo

import (
	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:100;not null;uniqueIndex:categories_name_key"`
	Description string `gorm:"type:text;not null;default:''"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type CustomerDTO struct {
	NationalID string `gorm:"primaryKey;size:15"`
	FirstNames string `gorm:"size:100;not null"`
	LastNames  string `gorm:"size:100;not null"`
	Address    string `gorm:"size:255;not null;default:''"`
	District   string `gorm:"size:100;not null;default:''"`
	Email      string `gorm:"size:254;not null;uniqueIndex:customers_email_key"`
	Phone      string `gorm:"size:20;not null;default:''"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type ProductDTO struct {
	SerialNumber string          `gorm:"primaryKey;size:50"`
	Name         string          `gorm:"size:150;not null"`
	Description  string          `gorm:"type:text;not null;default:''"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Stock        int             `gorm:"not null;check:chk_products_stock,stock >= 0"`
	CategoryID   *int64          `gorm:"index"`
	Color        string          `gorm:"size:50;not null;default:''"`
	Dimensions   string          `gorm:"size:100;not null;default:''"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type DeliveryPersonDTO struct {
	NationalID string `gorm:"primaryKey;size:15"`
	FirstNames string `gorm:"size:100;not null"`
	LastNames  string `gorm:"size:100;not null"`
	Phone      string `gorm:"size:20;not null;default:''"`
}

func (DeliveryPersonDTO) TableName() string {
	return "delivery_persons"
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID(), Name: c.Name(), Description: c.Description()}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	return catalog.RestoreCategory(dto.ID, dto.Name, dto.Description)
}

func customerFromDomain(c *catalog.Customer) CustomerDTO {
	p := c.Profile()
	return CustomerDTO{
		NationalID: c.NationalID().String(),
		FirstNames: p.FirstNames,
		LastNames:  p.LastNames,
		Address:    p.Address,
		District:   p.District,
		Email:      p.Email.String(),
		Phone:      p.Phone,
	}
}

func customerToDomain(dto CustomerDTO) (*catalog.Customer, error) {
	nid, err := kernel.NewNationalID(dto.NationalID)
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	return catalog.NewCustomer(nid, catalog.CustomerProfile{
		FirstNames: dto.FirstNames,
		LastNames:  dto.LastNames,
		Address:    dto.Address,
		District:   dto.District,
		Email:      email,
		Phone:      dto.Phone,
	})
}

func productFromDomain(p *catalog.Product) ProductDTO {
	d := p.Details()
	return ProductDTO{
		SerialNumber: p.SerialNumber(),
		Name:         d.Name,
		Description:  d.Description,
		UnitPrice:    d.UnitPrice,
		Stock:        d.Stock,
		CategoryID:   d.CategoryID,
		Color:        d.Color,
		Dimensions:   d.Dimensions,
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	return catalog.NewProduct(dto.SerialNumber, catalog.ProductDetails{
		Name:        dto.Name,
		Description: dto.Description,
		UnitPrice:   dto.UnitPrice,
		Stock:       dto.Stock,
		CategoryID:  dto.CategoryID,
		Color:       dto.Color,
		Dimensions:  dto.Dimensions,
	})
}

func deliveryPersonFromDomain(d *catalog.DeliveryPerson) DeliveryPersonDTO {
	p := d.Profile()
	return DeliveryPersonDTO{
		NationalID: d.NationalID().String(),
		FirstNames: p.FirstNames,
		LastNames:  p.LastNames,
		Phone:      p.Phone,
	}
}

func deliveryPersonToDomain(dto DeliveryPersonDTO) (*catalog.DeliveryPerson, error) {
	nid, err := kernel.NewNationalID(dto.NationalID)
	if err != nil {
		return nil, err
	}
	return catalog.NewDeliveryPerson(nid, catalog.DeliveryPersonProfile{
		FirstNames: dto.FirstNames,
		LastNames:  dto.LastNames,
		Phone:      dto.Phone,
	})
}
