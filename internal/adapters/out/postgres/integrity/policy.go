// Package integrity makes the deletion behaviour of every foreign key explicit.
// Repositories call EnforceOnDelete inside their transaction before removing a
// parent row, and Migrate installs the same policies as database constraints.
package integrity

import (
	"context"
	"fmt"

	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Policy int

const (
	// Protect rejects the delete while child rows exist.
	Protect Policy = iota + 1
	// Cascade deletes the child rows with the parent.
	Cascade
	// SetNull clears the child reference and keeps the child row.
	SetNull
)

func (p Policy) String() string {
	switch p {
	case Protect:
		return "PROTECT"
	case Cascade:
		return "CASCADE"
	case SetNull:
		return "SET NULL"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// OnDelete is the referential action for the database constraint.
func (p Policy) OnDelete() string {
	if p == Protect {
		return "RESTRICT"
	}
	return p.String()
}

// Relation is a foreign key from Child.ChildColumn to Parent.ParentKey.
type Relation struct {
	Parent       string
	ParentKey    string
	ParentObject string
	Child        string
	ChildColumn  string
	Policy       Policy
}

func (r Relation) ConstraintName() string {
	return fmt.Sprintf("fk_%s_%s", r.Child, r.ChildColumn)
}

// Relations lists every foreign key of the schema.
var Relations = []Relation{
	{Parent: "categories", ParentKey: "id", ParentObject: "category", Child: "products", ChildColumn: "category_id", Policy: SetNull},
	{Parent: "customers", ParentKey: "national_id", ParentObject: "customer", Child: "orders", ChildColumn: "customer_national_id", Policy: Protect},
	{Parent: "delivery_persons", ParentKey: "national_id", ParentObject: "delivery person", Child: "orders", ChildColumn: "delivery_person_national_id", Policy: SetNull},
	{Parent: "products", ParentKey: "serial_number", ParentObject: "product", Child: "order_lines", ChildColumn: "product_serial_number", Policy: Protect},
	{Parent: "orders", ParentKey: "number", ParentObject: "order", Child: "order_lines", ChildColumn: "order_number", Policy: Cascade},
}

// RelationsOf returns the relations whose parent is table.
func RelationsOf(table string) []Relation {
	var out []Relation
	for _, r := range Relations {
		if r.Parent == table {
			out = append(out, r)
		}
	}
	return out
}

// EnforceOnDelete applies the policies of every relation pointing at the parent
// row identified by key. All Protect checks run before any child row changes,
// so a rejected delete leaves the children untouched. Cascades are one level
// deep; no child table is itself a parent of a cascading relation.
func EnforceOnDelete(ctx context.Context, tx *gorm.DB, parent string, key any) error {
	relations := RelationsOf(parent)
	db := tx.WithContext(ctx)

	for _, r := range relations {
		if r.Policy != Protect {
			continue
		}
		var count int64
		if err := db.Table(r.Child).Where(childMatch(r, key)).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.NewReferentialIntegrityViolationError(r.ParentObject, key, r.Child)
		}
	}

	for _, r := range relations {
		var err error
		switch r.Policy {
		case SetNull:
			err = db.Exec("UPDATE ? SET ? = NULL WHERE ?",
				clause.Table{Name: r.Child}, clause.Column{Name: r.ChildColumn}, childMatch(r, key)).Error
		case Cascade:
			err = db.Exec("DELETE FROM ? WHERE ?", clause.Table{Name: r.Child}, childMatch(r, key)).Error
		case Protect:
		}
		if err != nil {
			return fmt.Errorf("apply %s on %s.%s: %w", r.Policy, r.Child, r.ChildColumn, err)
		}
	}

	return nil
}

func childMatch(r Relation, key any) clause.Eq {
	return clause.Eq{Column: clause.Column{Table: r.Child, Name: r.ChildColumn}, Value: key}
}

// InstallConstraints creates the foreign keys of Relations that do not exist yet.
func InstallConstraints(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, r := range Relations {
		if migrator.HasConstraint(r.Child, r.ConstraintName()) {
			continue
		}
		err := db.Exec(
			"ALTER TABLE ? ADD CONSTRAINT ? FOREIGN KEY (?) REFERENCES ? (?) ON DELETE "+r.Policy.OnDelete(),
			clause.Table{Name: r.Child},
			clause.Column{Name: r.ConstraintName()},
			clause.Column{Name: r.ChildColumn},
			clause.Table{Name: r.Parent},
			clause.Column{Name: r.ParentKey},
		).Error
		if err != nil {
			return fmt.Errorf("install %s: %w", r.ConstraintName(), err)
		}
	}
	return nil
}
