package seed

import (
	"context"
	"fmt"
	"log/slog"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type CategoryCreator interface {
	Handle(ctx context.Context, cmd commands.CreateCategoryCommand) (int64, error)
}

type CategoryLister interface {
	ListCategories(ctx context.Context, query queries.ListCatalogQuery) ([]queries.CategoryView, error)
}

type Handlers struct {
	CreateCategory       CategoryCreator
	Categories           CategoryLister
	CreateCustomer       CommandHandler[commands.CreateCustomerCommand]
	CreateDeliveryPerson CommandHandler[commands.CreateDeliveryPersonCommand]
	CreateProduct        CommandHandler[commands.CreateProductCommand]
	CreateOperator       CommandHandler[commands.CreateOperatorCommand]
}

// Report counts the records a run inserted and the ones already present.
type Report struct {
	Created int
	Skipped int
}

// Seeder inserts fixtures through the regular command handlers so that every
// record passes the same validation as one entered over HTTP.
type Seeder struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewSeeder(handlers Handlers, logger *slog.Logger) *Seeder {
	return &Seeder{handlers: handlers, logger: logger.With("component", "seed")}
}

// Apply inserts categories first so products can refer to them by name.
// Records that already exist are skipped; any other failure stops the run.
func (s *Seeder) Apply(ctx context.Context, f *Fixtures) (Report, error) {
	var report Report

	categoryIDs, err := s.categoryIDs(ctx)
	if err != nil {
		return report, err
	}

	for _, c := range f.Categories {
		// Existing categories keep their ids for the product lookup below.
		if _, ok := categoryIDs[c.Name]; ok {
			report.Skipped++
			s.logger.Info("record already exists", "kind", "category", "key", c.Name)
			continue
		}
		cmd, err := commands.NewCreateCategoryCommand(c.Name, c.Description)
		if err != nil {
			return report, fmt.Errorf("category %q: %w", c.Name, err)
		}
		id, err := s.handlers.CreateCategory.Handle(ctx, cmd)
		if err = s.record(&report, "category", c.Name, err); err != nil {
			return report, err
		}
		if id != 0 {
			categoryIDs[c.Name] = id
		}
	}

	for _, c := range f.Customers {
		cmd, err := commands.NewCreateCustomerCommand(c.NationalID, commands.CustomerInput{
			FirstNames: c.FirstNames,
			LastNames:  c.LastNames,
			Address:    c.Address,
			District:   c.District,
			Email:      c.Email,
			Phone:      c.Phone,
		})
		if err != nil {
			return report, fmt.Errorf("customer %q: %w", c.NationalID, err)
		}
		if err = s.record(&report, "customer", c.NationalID, s.handlers.CreateCustomer.Handle(ctx, cmd)); err != nil {
			return report, err
		}
	}

	for _, d := range f.DeliveryPersons {
		cmd, err := commands.NewCreateDeliveryPersonCommand(d.NationalID, catalog.DeliveryPersonProfile{
			FirstNames: d.FirstNames,
			LastNames:  d.LastNames,
			Phone:      d.Phone,
		})
		if err != nil {
			return report, fmt.Errorf("delivery person %q: %w", d.NationalID, err)
		}
		if err = s.record(&report, "delivery person", d.NationalID, s.handlers.CreateDeliveryPerson.Handle(ctx, cmd)); err != nil {
			return report, err
		}
	}

	for _, p := range f.Products {
		details, err := productDetails(p, categoryIDs)
		if err != nil {
			return report, fmt.Errorf("product %q: %w", p.SerialNumber, err)
		}
		cmd, err := commands.NewCreateProductCommand(p.SerialNumber, details)
		if err != nil {
			return report, fmt.Errorf("product %q: %w", p.SerialNumber, err)
		}
		if err = s.record(&report, "product", p.SerialNumber, s.handlers.CreateProduct.Handle(ctx, cmd)); err != nil {
			return report, err
		}
	}

	for _, o := range f.Operators {
		cmd, err := commands.NewCreateOperatorCommand(o.Username, o.Password)
		if err != nil {
			return report, fmt.Errorf("operator %q: %w", o.Username, err)
		}
		if err = s.record(&report, "operator", o.Username, s.handlers.CreateOperator.Handle(ctx, cmd)); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (s *Seeder) categoryIDs(ctx context.Context) (map[string]int64, error) {
	existing, err := s.handlers.Categories.ListCategories(ctx, queries.NewListCatalogQuery(false))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	ids := make(map[string]int64, len(existing))
	for _, c := range existing {
		ids[c.Name] = c.ID
	}
	return ids, nil
}

func (s *Seeder) record(report *Report, kind, key string, err error) error {
	switch {
	case err == nil:
		report.Created++
		return nil
	case errs.KindOf(err) == errs.KindUniqueConstraintViolation:
		report.Skipped++
		s.logger.Info("record already exists", "kind", kind, "key", key)
		return nil
	default:
		return fmt.Errorf("%s %q: %w", kind, key, err)
	}
}

func productDetails(p Product, categoryIDs map[string]int64) (catalog.ProductDetails, error) {
	price, err := decimal.NewFromString(p.UnitPrice)
	if err != nil {
		return catalog.ProductDetails{}, errs.NewValueIsInvalidErrorWithCause("unit price", err)
	}

	details := catalog.ProductDetails{
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   price,
		Stock:       p.Stock,
		Color:       p.Color,
		Dimensions:  p.Dimensions,
	}
	if p.Category != "" {
		id, ok := categoryIDs[p.Category]
		if !ok {
			return catalog.ProductDetails{}, errs.NewObjectNotFoundError("category", p.Category)
		}
		details.CategoryID = &id
	}
	return details, nil
}
