package order

import (
	"errors"
	"fmt"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item owned exclusively by its Order. It captures a
// point-in-time snapshot of the product's catalog attributes so that later
// catalog edits never retroactively alter a placed order. Items are immutable:
// the struct exposes no mutators and has no lifecycle of its own.
type Item struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// productID references the catalog product the snapshot was taken from
	productID kernel.UUID

	// productName is the product name at order time
	productName string

	// productImage is the product image URL at order time
	productImage string

	// unitPrice is the authoritative catalog price at order time
	unitPrice kernel.Money

	// unit is the sales unit at order time (e.g. "kg", "crate")
	unit string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// qualityGrade is the product grade at order time
	qualityGrade string

	// isOrganic records the product's organic flag at order time
	isOrganic bool

	// harvestDate is the product's harvest date at order time (nil if unknown)
	harvestDate *time.Time

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates an immutable line-item snapshot.
//
// The unit price must come from the catalog snapshot reader, never from client
// input; this is what makes price tampering impossible at creation time.
// Quantity must be positive and the product name must not be empty.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	productImage string,
	unitPrice kernel.Money,
	unit string,
	quantity int,
	qualityGrade string,
	isOrganic bool,
	harvestDate *time.Time,
) (Item, error) {
	item := Item{
		productImage:  productImage,
		unitPrice:     unitPrice,
		unit:          unit,
		qualityGrade:  qualityGrade,
		isOrganic:     isOrganic,
		harvestDate:   harvestDate,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog product identifier the snapshot was taken from.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name at order time.
func (i Item) ProductName() string {
	return i.productName
}

// ProductImage returns the product image URL at order time.
func (i Item) ProductImage() string {
	return i.productImage
}

// UnitPrice returns the catalog unit price at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Unit returns the sales unit at order time.
func (i Item) Unit() string {
	return i.unit
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// QualityGrade returns the product grade at order time.
func (i Item) QualityGrade() string {
	return i.qualityGrade
}

// IsOrganic returns the product's organic flag at order time.
func (i Item) IsOrganic() bool {
	return i.isOrganic
}

// HarvestDate returns the product's harvest date at order time, or nil.
func (i Item) HarvestDate() *time.Time {
	return i.harvestDate
}

// LineTotal returns unitPrice multiplied by quantity.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
