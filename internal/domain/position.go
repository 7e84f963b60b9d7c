package domain

import "fmt"

// PositionType classifies a job posting and an applicant's interests.
type PositionType string

// Position types offered on the marketplace.
const (
	PositionStudentenferienjob PositionType = "studentenferienjob"
	PositionSaisonjob          PositionType = "saisonjob"
	PositionWorkAndHoliday     PositionType = "work_and_holiday"
	PositionFachkraft          PositionType = "fachkraft"
	PositionAusbildung         PositionType = "ausbildung"
)

// AllPositionTypes lists every position type in display order.
func AllPositionTypes() []PositionType {
	return []PositionType{
		PositionStudentenferienjob,
		PositionSaisonjob,
		PositionWorkAndHoliday,
		PositionFachkraft,
		PositionAusbildung,
	}
}

// Valid reports whether the position type is one of the known tags.
func (p PositionType) Valid() bool {
	switch p {
	case PositionStudentenferienjob, PositionSaisonjob, PositionWorkAndHoliday,
		PositionFachkraft, PositionAusbildung:
		return true
	}
	return false
}

// ParsePositionType converts a string into a PositionType.
func ParsePositionType(s string) (PositionType, error) {
	p := PositionType(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown position type: %q", s)
	}
	return p, nil
}
