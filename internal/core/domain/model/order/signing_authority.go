package order

import (
	"fmt"

	"officeorder/internal/pkg/errs"
)

// SigningAuthority is the role whose name appears as the approving signature
// on the generated document.
type SigningAuthority int

const (
	// SigningAuthorityUnset means no signing authority has been selected yet.
	// Draft saves allow this; submit and preview do not.
	SigningAuthorityUnset SigningAuthority = iota

	// AssistantRegistrar signs routine visit orders.
	AssistantRegistrar

	// DeputyRegistrar signs orders escalated past the assistant level.
	DeputyRegistrar

	// Registrar signs orders requiring the highest office signature.
	Registrar
)

func getSigningAuthorityStrings() map[SigningAuthority]string {
	return map[SigningAuthority]string{
		AssistantRegistrar: "Assistant Registrar",
		DeputyRegistrar:    "Deputy Registrar",
		Registrar:          "Registrar",
	}
}

// ParseSigningAuthority converts a display/wire string into a
// SigningAuthority. The empty string parses as SigningAuthorityUnset; any
// other unrecognized value is an error.
func ParseSigningAuthority(s string) (SigningAuthority, error) {
	if s == "" {
		return SigningAuthorityUnset, nil
	}
	for authority, str := range getSigningAuthorityStrings() {
		if str == s {
			return authority, nil
		}
	}
	return SigningAuthorityUnset, errs.NewValueIsInvalidErrorWithCause(
		"signing authority is invalid",
		fmt.Errorf("%q is not a valid signing authority", s),
	)
}

// String returns the display name of the signing authority, or the empty
// string when unset.
func (a SigningAuthority) String() string {
	if str, ok := getSigningAuthorityStrings()[a]; ok {
		return str
	}
	return ""
}

// IsSet reports whether a signing authority has been selected.
func (a SigningAuthority) IsSet() bool {
	_, ok := getSigningAuthorityStrings()[a]
	return ok
}
