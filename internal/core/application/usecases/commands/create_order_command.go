package commands

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemRequest is one requested line of a new order: which product and how
// much. The price and everything else about the product comes from the
// catalog snapshot, never from the client.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a buyer's request to place a new order.
// Encapsulates the requested items, destination, payment method, and the
// cost fields charged on top of the item subtotal.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, buyerID,
//	    []ItemRequest{{ProductID: productID, Quantity: 2}},
//	    address, order.MethodCard, 2.50, 5.00, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	buyerID        kernel.UUID
	items          []ItemRequest
	address        order.Address
	paymentMethod  order.PaymentMethod
	taxAmount      kernel.Money
	shippingCost   kernel.Money
	discountAmount kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that identifiers are valid, at least one item is requested with a
// positive quantity, the address and payment method are valid, and the cost
// amounts are non-negative. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	items []ItemRequest,
	address order.Address,
	paymentMethod order.PaymentMethod,
	taxAmount float64,
	shippingCost float64,
	discountAmount float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setCosts(taxAmount, shippingCost, discountAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the buyer placing the order.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Items returns the requested (product, quantity) pairs.
func (c CreateOrderCommand) Items() []ItemRequest {
	items := make([]ItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

// Address returns the shipping destination.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// TaxAmount returns the tax charged on top of the subtotal.
func (c CreateOrderCommand) TaxAmount() kernel.Money {
	return c.taxAmount
}

// ShippingCost returns the shipping cost charged on top of the subtotal.
func (c CreateOrderCommand) ShippingCost() kernel.Money {
	return c.shippingCost
}

// DiscountAmount returns the discount subtracted from the total.
func (c CreateOrderCommand) DiscountAmount() kernel.Money {
	return c.discountAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if len(items) == 0 {
		return order.ErrNoItems
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	c.items = make([]ItemRequest, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

func (c *CreateOrderCommand) setCosts(taxAmount, shippingCost, discountAmount float64) error {
	tax, err := kernel.NewMoney(taxAmount)
	if err != nil {
		return fmt.Errorf("tax: %w", err)
	}
	shipping, err := kernel.NewMoney(shippingCost)
	if err != nil {
		return fmt.Errorf("shipping: %w", err)
	}
	discount, err := kernel.NewMoney(discountAmount)
	if err != nil {
		return fmt.Errorf("discount: %w", err)
	}

	c.taxAmount = tax
	c.shippingCost = shipping
	c.discountAmount = discount
	return nil
}
