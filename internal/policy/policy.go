// Package policy holds the single authorization decision table for the
// marketplace. Every lifecycle operation funnels through Decide instead of
// doing ad-hoc role comparisons in handlers.
package policy

import "stayhub/internal/domain"

// Principal is the authenticated actor extracted from the bearer token.
type Principal struct {
	ID   int64
	Role domain.Role
}

// Action enumerates every permission-gated operation.
type Action int

const (
	ActionListUsers Action = iota
	ActionDeleteUser
	ActionAdminDeleteListing
	ActionCreateListing
	ActionReadListing
	ActionUpdateListing
	ActionDeleteListing
	ActionCreateBooking
	ActionListAllBookings
	ActionListOwnBookings
	ActionListVendorBookings
	ActionReadBooking
	ActionUpdateBookingStatus
	ActionDeleteBooking
)

// Resource carries the ownership facts a rule may need. Only the fields
// relevant to the action are consulted.
type Resource struct {
	ListingVendorID   int64
	BookingCustomerID int64
}

// Decision is the outcome of a policy check. Denials always carry a
// human-readable reason; they are never silent.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// ForbiddenError is the error form of a denial, carrying the reason for the
// 403 body.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

// Err returns nil for an allow and a *ForbiddenError for a deny, so
// lifecycle services can gate an operation in one line.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &ForbiddenError{Reason: d.Reason}
}

// Decide evaluates the rule table for one principal, action and resource.
// It is pure: no I/O, no store access. Callers resolve the resource first.
func Decide(p Principal, action Action, res *Resource) Decision {
	switch action {
	case ActionListUsers:
		if p.Role == domain.RoleAdmin {
			return allow()
		}
		return deny("Access denied. Admins only.")

	case ActionDeleteUser:
		if p.Role == domain.RoleAdmin {
			return allow()
		}
		return deny("Access denied. Admins only.")

	case ActionAdminDeleteListing:
		if p.Role == domain.RoleAdmin {
			return allow()
		}
		return deny("Access denied. Admins only.")

	case ActionCreateListing:
		if p.Role == domain.RoleVendor {
			return allow()
		}
		return deny("Access denied. Vendors only.")

	case ActionReadListing:
		// Listings are public, anonymous access included.
		return allow()

	case ActionUpdateListing, ActionDeleteListing:
		if p.Role == domain.RoleAdmin {
			return allow()
		}
		if p.Role == domain.RoleVendor && res != nil && res.ListingVendorID == p.ID {
			return allow()
		}
		if action == ActionUpdateListing {
			return deny("Access denied. You can only edit your own listings.")
		}
		return deny("Access denied. You can only delete your own listings.")

	case ActionCreateBooking:
		if p.Role == domain.RoleCustomer {
			return allow()
		}
		return deny("Access denied. Customers only.")

	case ActionListAllBookings:
		if p.Role == domain.RoleAdmin {
			return allow()
		}
		return deny("Access denied. Admins only.")

	case ActionListOwnBookings:
		if p.Role == domain.RoleCustomer {
			return allow()
		}
		return deny("Access denied. Customers only.")

	case ActionListVendorBookings:
		if p.Role == domain.RoleVendor {
			return allow()
		}
		return deny("Access denied. Vendors only.")

	case ActionReadBooking:
		if p.Role == domain.RoleAdmin {
			return allow()
		}
		if p.Role == domain.RoleCustomer && res != nil && res.BookingCustomerID == p.ID {
			return allow()
		}
		// Vendors have no single-booking read path.
		return deny("Access denied. You can only view your own bookings.")

	case ActionUpdateBookingStatus:
		if p.Role == domain.RoleAdmin {
			return allow()
		}
		if p.Role == domain.RoleVendor && res != nil && res.ListingVendorID == p.ID {
			return allow()
		}
		return deny("Access denied. Vendors can only update their own listings' bookings.")

	case ActionDeleteBooking:
		// Customer self-service only; admin delete is intentionally absent.
		if res != nil && res.BookingCustomerID == p.ID {
			return allow()
		}
		return deny("Access denied. You can only delete your own bookings.")
	}

	return deny("Access denied.")
}
