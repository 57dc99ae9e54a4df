package workflow

import (
	"strconv"
	"strings"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

// ValidationError carries the user-facing reason the form was refused.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ValidateDraft checks the assembled record before the undertaking stage.
// Rules run in a fixed order and the first failure wins, so the student is
// walked through the form top to bottom.
func ValidateDraft(rec model.ApplicationRecord) error {
	if missingAny(rec.StudentName, rec.Age, rec.DOB, rec.FatherName, rec.MobileNo, rec.EmergencyNo) {
		return &ValidationError{Reason: "Please fill required personal details."}
	}
	if age, err := strconv.Atoi(strings.TrimSpace(rec.Age)); err != nil || age < 18 {
		return &ValidationError{Reason: "Age must be 18 or above."}
	}
	if rec.MobileNo == rec.EmergencyNo {
		return &ValidationError{Reason: "Mobile and Emergency numbers must be different."}
	}
	if missingAny(rec.Course, rec.Year, rec.CollegeName) {
		return &ValidationError{Reason: "Please fill required educational details."}
	}
	if strings.TrimSpace(rec.FromDate) == "" || rec.Days <= 0 {
		return &ValidationError{Reason: "Please specify training dates."}
	}
	return nil
}

func missingAny(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
