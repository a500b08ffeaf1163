package entity

import "github.com/google/uuid"

// SubjectRef identifies the target of a review or favorite. Exactly one of
// the three references must be set.
type SubjectRef struct {
	BusinessID *uuid.UUID
	ProductID  *uuid.UUID
	ServiceID  *uuid.UUID
}

// Valid reports whether exactly one reference is set.
func (r SubjectRef) Valid() bool {
	count := 0
	if r.BusinessID != nil {
		count++
	}
	if r.ProductID != nil {
		count++
	}
	if r.ServiceID != nil {
		count++
	}

	return count == 1
}
