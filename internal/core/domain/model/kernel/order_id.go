package kernel

import (
	"encoding/hex"
	"fmt"
	"strings"

	"trading/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// OrderIDPrefix starts every order identifier.
	OrderIDPrefix = "ORD-"
	orderIDHexLen = 12
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("order id must be created via NewOrderID or OrderIDFromString")

// OrderID identifies an order. Its textual form is "ORD-" followed by twelve
// upper-case hexadecimal characters taken from a random (version 4) UUID.
type OrderID struct {
	value string
}

// NewOrderID generates a fresh identifier.
func NewOrderID() OrderID {
	id := uuid.New()
	return OrderID{value: OrderIDPrefix + strings.ToUpper(hex.EncodeToString(id[:])[:orderIDHexLen])}
}

// OrderIDFromString parses an identifier received from storage or a client.
// Lower-case hex is accepted and normalized.
func OrderIDFromString(s string) (OrderID, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}

	suffix, ok := strings.CutPrefix(s, OrderIDPrefix)
	if !ok || len(suffix) != orderIDHexLen {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%q does not match %sXXXXXXXXXXXX", s, OrderIDPrefix),
		)
	}
	if _, err := hex.DecodeString(suffix); err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	return OrderID{value: s}, nil
}

func (id OrderID) String() string {
	return id.value
}

func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
