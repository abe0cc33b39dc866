package order

import (
	"fmt"
	"strings"

	"trading/internal/core/domain/domainerr"
	"trading/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending       -> Open, Rejected
//	Open          -> PartialFilled, Filled, Cancelled
//	PartialFilled -> PartialFilled, Filled, Cancelled
//
// Filled, Cancelled and Rejected are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of a freshly constructed order that has not been accepted yet.
	Pending

	// Open orders are accepted and waiting for execution.
	Open

	// PartialFilled orders have 0 < filled quantity < quantity.
	PartialFilled

	// Filled orders are completely executed.
	Filled

	// Cancelled orders were withdrawn by their owner before being completely filled.
	Cancelled

	// Rejected orders were refused while still pending.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pending:       "PENDING",
		Open:          "OPEN",
		PartialFilled: "PARTIAL_FILLED",
		Filled:        "FILLED",
		Cancelled:     "CANCELLED",
		Rejected:      "REJECTED",
	}
}

// ParseStatus converts a string tag such as "PARTIAL_FILLED" into a Status.
// Matching ignores case and surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	tag := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == tag {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that s is one of the defined statuses other than Unknown.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire tag of the status, e.g. "PARTIAL_FILLED".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsOpen reports whether the order can still be filled or cancelled.
func (s Status) IsOpen() bool {
	return s == Open || s == PartialFilled
}

// IsClosed reports whether s is terminal.
func (s Status) IsClosed() bool {
	return s == Filled || s == Cancelled || s == Rejected
}

// OpenStatuses lists the statuses reported by IsOpen.
func OpenStatuses() []Status {
	return []Status{Open, PartialFilled}
}

// Open transitions Pending to Open.
func (s Status) Open() (Status, error) {
	if s != Pending {
		return Unknown, domainerr.NewInvalidOrderOperationError(
			s.String(),
			[]string{Pending.String()},
			fmt.Sprintf("cannot open order with status %s, expected: %s", s, Pending),
		)
	}
	return Open, nil
}

// ValidateFill checks that an order in status s may receive a fill,
// without performing the transition.
func (s Status) ValidateFill() error {
	if !s.IsOpen() {
		return domainerr.NewInvalidOrderOperationError(
			s.String(),
			statusStrings(OpenStatuses()),
			fmt.Sprintf("cannot fill order with status %s", s),
		)
	}
	return nil
}

// Fill transitions an open status to Filled when complete is true and to
// PartialFilled otherwise.
func (s Status) Fill(complete bool) (Status, error) {
	if err := s.ValidateFill(); err != nil {
		return Unknown, err
	}
	if complete {
		return Filled, nil
	}
	return PartialFilled, nil
}

// Cancel transitions Open or PartialFilled to Cancelled.
func (s Status) Cancel() (Status, error) {
	if !s.IsOpen() {
		return Unknown, domainerr.NewInvalidOrderOperationError(
			s.String(),
			statusStrings(OpenStatuses()),
			fmt.Sprintf("cannot cancel order with status %s, only OPEN or PARTIAL_FILLED orders can be cancelled", s),
		)
	}
	return Cancelled, nil
}

// Reject transitions Pending to Rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return Unknown, domainerr.NewInvalidOrderOperationError(
			s.String(),
			[]string{Pending.String()},
			fmt.Sprintf("cannot reject order with status %s, expected: %s", s, Pending),
		)
	}
	return Rejected, nil
}

func statusStrings(statuses []Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
