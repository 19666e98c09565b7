package item

import "wishlink/internal/domain/guest"

// ReservationState is the viewer-relative display state of an item's
// reservation.
type ReservationState string

const (
	ReservationOpen    ReservationState = "open"
	ReservationBySelf  ReservationState = "reserved_by_self"
	ReservationByOther ReservationState = "reserved_by_other"
)

// ToggleReservation returns the desired new holder: nil when the viewer
// currently holds the reservation (un-reserve), the viewer otherwise (claim).
// It does not mutate the item and does not persist; the write is a collaborator
// concern. Two viewers toggling concurrently race with last-writer-wins
// semantics at the store.
func (i *Item) ToggleReservation(viewer guest.Identity) *guest.Identity {
	if i.reservedBy != nil && i.reservedBy.Equals(viewer) {
		return nil
	}
	v := viewer
	return &v
}

// ReservationStateFor compares the current holder against the viewer's guest
// identity. A zero viewer identity never matches a holder.
func (i *Item) ReservationStateFor(viewer guest.Identity) ReservationState {
	if i.reservedBy == nil {
		return ReservationOpen
	}
	if !viewer.IsZero() && i.reservedBy.Equals(viewer) {
		return ReservationBySelf
	}
	return ReservationByOther
}
