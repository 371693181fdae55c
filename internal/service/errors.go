package service

import "errors"

// Sentinel errors returned by services. Handlers match them with errors.Is
// to pick response status codes; conflict errors are deliberately distinct
// from validation errors so clients can message "already booked" vs "bad
// input".
var (
	ErrToolNotFound         = errors.New("tool not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrMaintenanceNotFound  = errors.New("maintenance not found")
	ErrSparePartNotFound    = errors.New("spare part not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")

	ErrInvalidDateRange = errors.New("end date must be after start date")

	ErrBookingConflict     = errors.New("tool is already booked or has a pending request for this period")
	ErrMaintenanceConflict = errors.New("tool is scheduled for maintenance during this period")

	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNoActiveBooking      = errors.New("tool has no active booking")
	ErrInsufficientQuantity = errors.New("insufficient spare part quantity")

	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)
