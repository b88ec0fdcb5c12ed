package domain

// LeafType classifies a collection by leaf grade.
type LeafType string

const (
	LeafTypeNormal LeafType = "Normal"
	LeafTypeSuper  LeafType = "Super"
)

// ParseLeafType validates an external leaf type value.
func ParseLeafType(s string) (LeafType, bool) {
	switch LeafType(s) {
	case LeafTypeNormal, LeafTypeSuper:
		return LeafType(s), true
	}
	return "", false
}

// Shift classifies a record by time of day at write time.
type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftEvening Shift = "Evening"
)

// SourceMode records which client system wrote a row.
type SourceMode string

const (
	SourceMobile SourceMode = "mobile"
	SourceWeb    SourceMode = "web"
)
