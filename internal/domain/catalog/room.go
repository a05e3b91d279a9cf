package catalog

import (
	"room-pricing/internal/domain/pricing"
)

// Room is one sellable room with its combo catalog. Rooms are loaded once at
// startup and treated as read-only afterwards.
type Room struct {
	ID       string
	Category string
	Name     string
	Pricing  []pricing.ComboPricing
}

// PricingSpec projects the room onto what the pricing engine consumes.
func (r Room) PricingSpec() pricing.RoomSpec {
	return pricing.RoomSpec{ID: r.ID, Combos: r.Pricing}
}
