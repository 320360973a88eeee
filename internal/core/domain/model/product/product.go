// Package product contains the Product entity. Products are owned by their
// restaurant; this service only reads them to validate and price orders.
package product

import (
	"errors"
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrNameIsRequired is returned when a product has no name.
	ErrNameIsRequired = errors.New("name is required")
)

// Product is a menu item offered by a restaurant. Within this service it is a
// read-only entity: orders reference products, capture their price, and check
// their availability and ownership.
type Product struct {
	// id is the unique identifier for the product
	id kernel.ID

	// restaurantID is the owning restaurant; a product belongs to exactly one
	restaurantID kernel.ID

	// name is the display name
	name string

	// price is the current unit price
	price float64

	// availability reports whether the product can currently be ordered
	availability bool

	// isConstructed ensures the product was created via NewProduct
	isConstructed bool
}

// NewProduct creates a validated Product instance.
func NewProduct(id kernel.ID, restaurantID kernel.ID, name string, price float64, availability bool) (*Product, error) {
	p := &Product{
		availability:  availability,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRestaurantID(restaurantID),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.ID {
	return p.id
}

// RestaurantID returns the owning restaurant's identifier.
func (p *Product) RestaurantID() kernel.ID {
	return p.restaurantID
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() float64 {
	return p.price
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.availability
}

// BelongsTo reports whether the product is owned by the given restaurant.
func (p *Product) BelongsTo(restaurantID kernel.ID) bool {
	return p.restaurantID == restaurantID
}

func (p *Product) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	p.restaurantID = restaurantID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%f is negative", price),
		)
	}
	p.price = price
	return nil
}
