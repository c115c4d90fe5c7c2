package domain

// Time format constants
const (
	// DateTimeLocalFormat is the editable representation used by form drafts
	// (the HTML datetime-local shape), always in the user's local timezone.
	DateTimeLocalFormat = "2006-01-02T15:04"

	// WireTimeFormat is how timestamps cross the store boundary (ISO-8601 UTC).
	WireTimeFormat = "2006-01-02T15:04:05Z07:00"
)

// Field size limits, matching the store schema.
const (
	MaxLocalLength       = 100
	MaxSalaLength        = 100
	MaxResponsavelLength = 100
)
