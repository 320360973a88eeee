package order

import (
	"errors"
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one product entry within an order: a product reference, a quantity
// and the product's unit price captured at order time. The captured price is
// immutable afterwards, so later product price changes never affect an
// already placed order.
type Line struct {
	// productID references the ordered product
	productID kernel.ID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the product price at the moment the order was placed
	unitPrice float64

	// isConstructed ensures the line was created via NewLine
	isConstructed bool
}

// NewLine creates a validated order line.
//
// Parameters:
//   - productID: The ordered product's identifier (must be valid)
//   - quantity: Units ordered (must be positive)
//   - unitPrice: Product price captured at order time (must not be negative)
//
// Returns:
//   - Line: The created line if all validations pass
//   - error: Validation error if any parameter is invalid
func NewLine(productID kernel.ID, quantity int, unitPrice float64) (Line, error) {
	line := Line{isConstructed: true}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductID returns the ordered product's identifier.
func (l Line) ProductID() kernel.ID {
	return l.productID
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the product price captured at order time.
func (l Line) UnitPrice() float64 {
	return l.unitPrice
}

// Subtotal returns the line total: unit price times quantity.
func (l Line) Subtotal() float64 {
	return l.unitPrice * float64(l.quantity)
}

func (l *Line) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%f is negative", unitPrice),
		)
	}
	l.unitPrice = unitPrice
	return nil
}
