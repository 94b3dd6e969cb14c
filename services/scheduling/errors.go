package scheduling

import (
	"errors"
	"fmt"
)

// Error codes callers branch on. Conflicts are never errors: a populated
// ConflictReport is a normal result. These codes cover the conditions that
// must not be mistaken for "no conflict".
const (
	CodeRoomNotFound       = "room_not_found"
	CodeClassNotFound      = "class_not_found"
	CodeTrainerNotAssigned = "trainer_not_assigned"
)

// ValidationError rejects malformed input before any store access.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "invalid scan input: " + e.Reason
}

// NotFoundError reports a missing room or class. Distinct from "no
// conflict": an invalid room must never be treated as free.
type NotFoundError struct {
	Code string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.ID)
}

// IntegrityError reports a data-integrity violation, currently only
// trainer_not_assigned: the trainer must be assigned to the class before
// being scheduled into one of its sessions.
type IntegrityError struct {
	Code      string
	TrainerID string
	ClassID   string
}

func (e IntegrityError) Error() string {
	return fmt.Sprintf("%s: trainer %s is not assigned to class %s", e.Code, e.TrainerID, e.ClassID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// IsIntegrity reports whether err is an IntegrityError.
func IsIntegrity(err error) bool {
	var ie IntegrityError
	return errors.As(err, &ie)
}
