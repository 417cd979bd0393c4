package booking

import (
	"fmt"
	"sort"
)

// Snapshot is a point-in-time copy of all three collections.
type Snapshot struct {
	Hotels       Records
	Customers    Records
	Reservations Records
}

// AuditFinding is one inconsistency found in a Snapshot.
type AuditFinding struct {
	Kind    Kind
	ID      string
	Problem string
}

func (f AuditFinding) String() string {
	return fmt.Sprintf("%s %s: %s", f.Kind, f.ID, f.Problem)
}

// Audit checks the availability invariant across a snapshot: every hotel
// must satisfy 0 <= rooms_available <= rooms_total, and the rooms it holds
// back must equal its count of ACTIVE reservations. Malformed records and
// reservations pointing at unknown hotels or customers are reported too.
// An empty result means the snapshot is consistent.
func Audit(s Snapshot) []AuditFinding {
	var findings []AuditFinding
	add := func(kind Kind, id, format string, args ...any) {
		findings = append(findings, AuditFinding{Kind: kind, ID: id, Problem: fmt.Sprintf(format, args...)})
	}

	hotels := make(map[string]Hotel, len(s.Hotels))
	for _, id := range s.Hotels.IDs() {
		h, err := decodeAt(s.Hotels[id], id, decodeHotel, Hotel.key)
		if err != nil {
			add(KindHotel, id, "%v", err)
			continue
		}
		if err := h.Validate(); err != nil {
			add(KindHotel, id, "%v", err)
		}
		hotels[id] = h
	}

	customers := make(map[string]bool, len(s.Customers))
	for _, id := range s.Customers.IDs() {
		if _, err := decodeAt(s.Customers[id], id, decodeCustomer, Customer.key); err != nil {
			add(KindCustomer, id, "%v", err)
		}
		customers[id] = true
	}

	active := make(map[string]int)
	for _, id := range s.Reservations.IDs() {
		r, err := decodeAt(s.Reservations[id], id, decodeReservation, Reservation.key)
		if err != nil {
			add(KindReservation, id, "%v", err)
			continue
		}
		if _, ok := hotels[r.HotelID]; !ok {
			if _, stored := s.Hotels[r.HotelID]; !stored {
				add(KindReservation, id, "references unknown hotel %q", r.HotelID)
			}
		}
		if !customers[r.CustomerID] {
			add(KindReservation, id, "references unknown customer %q", r.CustomerID)
		}
		if r.Status == StatusActive {
			active[r.HotelID]++
		}
	}

	for _, id := range s.Hotels.IDs() {
		h, ok := hotels[id]
		if !ok {
			continue
		}
		if held := h.RoomsTotal - h.RoomsAvailable; held != active[id] {
			add(KindHotel, id, "%d rooms held but %d active reservations", held, active[id])
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Kind != findings[j].Kind {
			return findings[i].Kind < findings[j].Kind
		}
		return findings[i].ID < findings[j].ID
	})
	return findings
}
