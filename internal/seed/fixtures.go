// Package seed loads catalog records and operator accounts from a YAML file
// into an empty or partly filled database.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixtures is the content of a seed file.
type Fixtures struct {
	Categories      []Category       `yaml:"categories"`
	Customers       []Customer       `yaml:"customers"`
	DeliveryPersons []DeliveryPerson `yaml:"delivery_persons"`
	Products        []Product        `yaml:"products"`
	Operators       []Operator       `yaml:"operators"`
}

type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type Customer struct {
	NationalID string `yaml:"national_id"`
	FirstNames string `yaml:"first_names"`
	LastNames  string `yaml:"last_names"`
	Address    string `yaml:"address"`
	District   string `yaml:"district"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
}

type DeliveryPerson struct {
	NationalID string `yaml:"national_id"`
	FirstNames string `yaml:"first_names"`
	LastNames  string `yaml:"last_names"`
	Phone      string `yaml:"phone"`
}

// Product refers to its category by name. UnitPrice is kept as text so that
// "10.50" is not rounded through a float.
type Product struct {
	SerialNumber string `yaml:"serial_number"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	UnitPrice    string `yaml:"unit_price"`
	Stock        int    `yaml:"stock"`
	Category     string `yaml:"category"`
	Color        string `yaml:"color"`
	Dimensions   string `yaml:"dimensions"`
}

type Operator struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	return &f, nil
}
