package order

import (
	"fmt"

	"officeorder/internal/pkg/errs"
)

// ProcessType distinguishes a fresh office order from the alternate process
// types that reference an already issued order. Amendment and cancellation
// unlock the otherwise read-only subject/reference fields and require the
// original order number.
type ProcessType int

const (
	// ProcessNone is a fresh office order with no referenced original.
	ProcessNone ProcessType = iota

	// ProcessAmendment amends an already issued order.
	ProcessAmendment

	// ProcessCancellation cancels an already issued order.
	ProcessCancellation
)

func getProcessTypeStrings() map[ProcessType]string {
	return map[ProcessType]string{
		ProcessNone:         "none",
		ProcessAmendment:    "amendment",
		ProcessCancellation: "cancellation",
	}
}

// ParseProcessType converts a stored or wire string into a ProcessType.
// The empty string parses as ProcessNone.
func ParseProcessType(s string) (ProcessType, error) {
	if s == "" {
		return ProcessNone, nil
	}
	for processType, str := range getProcessTypeStrings() {
		if str == s {
			return processType, nil
		}
	}
	return ProcessNone, errs.NewValueIsInvalidErrorWithCause(
		"process type is invalid",
		fmt.Errorf("%q is not a valid process type", s),
	)
}

// Validate checks if the ProcessType value is valid.
func (p ProcessType) Validate() error {
	if _, ok := getProcessTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"process type is invalid",
			fmt.Errorf("%d is not a valid process type", p),
		)
	}
	return nil
}

// String returns the wire representation of the process type.
func (p ProcessType) String() string {
	if str, ok := getProcessTypeStrings()[p]; ok {
		return str
	}
	return "none"
}

// RequiresOriginalOrder reports whether this process type references an
// already issued order and therefore requires a non-empty original order
// number at submit time.
func (p ProcessType) RequiresOriginalOrder() bool {
	return p == ProcessAmendment || p == ProcessCancellation
}
