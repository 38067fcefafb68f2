package scheduling

import "fmt"

// CallType identifies the kind of coaching call a client can book.
type CallType string

const (
	// CallTypeOnboarding is the one-time 40 minute introduction call.
	CallTypeOnboarding CallType = "onboarding"
	// CallTypeFollowUp is the weekly recurring 20 minute check-in call.
	CallTypeFollowUp CallType = "follow-up"
)

// ParseCallType validates and converts a caller supplied call type string.
func ParseCallType(value string) (CallType, error) {
	switch CallType(value) {
	case CallTypeOnboarding:
		return CallTypeOnboarding, nil
	case CallTypeFollowUp:
		return CallTypeFollowUp, nil
	}
	return "", fmt.Errorf("scheduling: unknown call type %q", value)
}

// Valid reports whether the call type is one of the supported values.
func (c CallType) Valid() bool {
	return c == CallTypeOnboarding || c == CallTypeFollowUp
}

// DurationMinutes returns the fixed call length for the type.
func (c CallType) DurationMinutes() int {
	if c == CallTypeOnboarding {
		return 40
	}
	return 20
}

// Recurring reports whether bookings of this type repeat weekly. Only
// follow-up calls recur; the coupling is a business rule, not a free field.
func (c CallType) Recurring() bool {
	return c == CallTypeFollowUp
}
