package entity

// ListingStatus is the soft-delete flag shared by products and services.
// Owner-facing deletion flips the status to INACTIVE; rows are never removed
// so historical reviews and favorites keep their references.
type ListingStatus string

const (
	// ListingStatusActive indicates a publicly visible listing.
	ListingStatusActive ListingStatus = "ACTIVE"
	// ListingStatusInactive indicates a soft-deleted or paused listing.
	ListingStatusInactive ListingStatus = "INACTIVE"
)

// String returns the string representation of the ListingStatus.
func (s ListingStatus) String() string {
	return string(s)
}

// IsValid checks if the ListingStatus is a valid value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusActive, ListingStatusInactive:
		return true
	default:
		return false
	}
}
