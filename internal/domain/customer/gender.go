package customer

import "github.com/crm/backend/internal/domain/shared"

// Gender represents a customer's declared gender
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

// ParseGender converts a wire string into a Gender.
// Matching is case-sensitive; anything outside the closed set is rejected
// rather than coerced to UNKNOWN.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderUnknown:
		return Gender(s), nil
	default:
		return "", shared.NewDomainError("INVALID_GENDER", "Gender must be one of MALE, FEMALE, UNKNOWN")
	}
}

// String returns the enumeration member name
func (g Gender) String() string {
	return string(g)
}
