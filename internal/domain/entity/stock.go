// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockRecord tracks on-hand and reserved units of a variant at one location.
// 0 <= Reserved <= Quantity holds after every committed mutation.
type StockRecord struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the record.
	VariantID  uuid.UUID `json:"variant_id"`  // The variant being stocked.
	LocationID uuid.UUID `json:"location_id"` // The warehouse location holding the stock.
	Quantity   int       `json:"quantity"`    // Units physically on hand.
	Reserved   int       `json:"reserved"`    // Units held by unpaid orders.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

// Available returns the units that may still be reserved.
func (s *StockRecord) Available() int {
	return s.Quantity - s.Reserved
}

// TotalAvailable sums available units across locations.
func TotalAvailable(records []*StockRecord) int {
	total := 0
	for _, r := range records {
		if avail := r.Available(); avail > 0 {
			total += avail
		}
	}

	return total
}
