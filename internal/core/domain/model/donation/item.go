package donation

import (
	"errors"

	"fooddonation/internal/pkg/errs"
	"fooddonation/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// maxItemQuantity bounds a single line item; larger donations are split.
const maxItemQuantity = 10000

// Item is one line of donated food: what it is, how much, and in what
// condition. Items are immutable value data attached to a donation.
type Item struct { //nolint:recvcheck //using for validation
	name      string
	quantity  int
	unit      string
	condition string

	guard guard.ConstructorGuard
}

// NewItem creates a validated donation line item.
// The name and unit must be non-empty and the quantity positive.
func NewItem(name string, quantity int, unit string, condition string) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnit(unit),
		item.setCondition(condition),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns what is being donated, e.g. "Rice".
func (i Item) Name() string {
	return i.name
}

// Quantity returns how much is being donated in the item's unit.
func (i Item) Quantity() int {
	return i.quantity
}

// Unit returns the measurement unit, e.g. "Kilograms".
func (i Item) Unit() string {
	return i.unit
}

// Condition describes the state of the food, e.g. "Fresh".
func (i Item) Condition() string {
	return i.condition
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 || quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("item unit")
	}
	i.unit = unit
	return nil
}

func (i *Item) setCondition(condition string) error {
	if condition == "" {
		return errs.NewValueIsRequiredError("item condition")
	}
	i.condition = condition
	return nil
}
