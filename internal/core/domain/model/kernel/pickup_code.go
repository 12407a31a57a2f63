package kernel

import (
	"crypto/rand"
	"fmt"

	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/guard"
)

// PickupCodeLength is the fixed length of confirmation codes.
const PickupCodeLength = 6

// pickupCodeAlphabet excludes easily confused characters (0/O, 1/I/L)
// because codes are exchanged verbally or read from a phone screen.
const pickupCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// ErrPickupCodeIsNotConstructed is returned when attempting to use an
// improperly initialized PickupCode.
var ErrPickupCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"pickup code must be created via GeneratePickupCode or PickupCodeFromString")

// PickupCode is a short user-facing confirmation token exchanged physically
// between parties to confirm a handoff: the provider checks the volunteer's
// pickup code when goods leave the location, and the shelter checks the
// delivery code when goods arrive.
//
// Codes are 6 characters drawn from an unambiguous uppercase alphabet.
//
// Example:
//
//	code, err := kernel.GeneratePickupCode()
//	if err != nil {
//	    // entropy source failure
//	}
//	fmt.Println(code) // e.g. "KM4TZ8"
type PickupCode struct {
	value string
	guard guard.ConstructorGuard
}

// GeneratePickupCode creates a new random confirmation code.
// Uses crypto/rand so codes are not guessable from previous ones.
func GeneratePickupCode() (PickupCode, error) {
	buf := make([]byte, PickupCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return PickupCode{}, fmt.Errorf("pickup code generation failed: %w", err)
	}

	for i, b := range buf {
		buf[i] = pickupCodeAlphabet[int(b)%len(pickupCodeAlphabet)]
	}

	return PickupCode{
		value: string(buf),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// PickupCodeFromString reconstructs a PickupCode from its string form.
// The input must be exactly PickupCodeLength characters from the code
// alphabet. Used when parsing codes from requests and persistence.
func PickupCodeFromString(s string) (PickupCode, error) {
	if len(s) != PickupCodeLength {
		return PickupCode{}, errs.NewValueIsInvalidErrorWithCause(
			"pickup code",
			fmt.Errorf("code must be %d characters, got %d", PickupCodeLength, len(s)),
		)
	}

	for _, c := range s {
		if !isPickupCodeChar(byte(c)) {
			return PickupCode{}, errs.NewValueIsInvalidErrorWithCause(
				"pickup code",
				fmt.Errorf("character %q is not allowed", c),
			)
		}
	}

	return PickupCode{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func isPickupCodeChar(c byte) bool {
	for i := range len(pickupCodeAlphabet) {
		if pickupCodeAlphabet[i] == c {
			return true
		}
	}
	return false
}

// String returns the code's text form.
func (p PickupCode) String() string {
	return p.value
}

// IsEqual compares two codes for an exact match.
func (p PickupCode) IsEqual(other PickupCode) bool {
	return p.value == other.value
}

// Validate checks that the PickupCode was properly constructed.
func (p PickupCode) Validate() error {
	return p.guard.Validate(ErrPickupCodeIsNotConstructed)
}
