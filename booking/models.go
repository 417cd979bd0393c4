package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status is the lifecycle state of a reservation. The only transition is
// ACTIVE -> CANCELED.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusCanceled Status = "CANCELED"
)

func (s Status) valid() bool {
	return s == StatusActive || s == StatusCanceled
}

// Hotel represents a hotel with a limited inventory of rooms.
type Hotel struct {
	ID             string `json:"hotel_id"`
	Name           string `json:"name"`
	RoomsTotal     int    `json:"rooms_total"`
	RoomsAvailable int    `json:"rooms_available"`
}

// ReserveRoom takes one room out of availability. It reports false when the
// hotel is already full.
func (h *Hotel) ReserveRoom() bool {
	if h.RoomsAvailable <= 0 {
		return false
	}
	h.RoomsAvailable--
	return true
}

// ReleaseRoom gives one room back, never past RoomsTotal. It reports false
// when the hotel was already at capacity; availability found above capacity
// is brought back down to RoomsTotal.
func (h *Hotel) ReleaseRoom() bool {
	if h.RoomsAvailable >= h.RoomsTotal {
		h.RoomsAvailable = h.RoomsTotal
		return false
	}
	h.RoomsAvailable++
	return true
}

func (h Hotel) key() string { return h.ID }

// Validate checks the room counts: both non-negative, available <= total.
func (h Hotel) Validate() error {
	if h.RoomsTotal < 0 || h.RoomsAvailable < 0 {
		return fmt.Errorf("%w: room counts must be non-negative (rooms_total=%d, rooms_available=%d)",
			ErrInvalidField, h.RoomsTotal, h.RoomsAvailable)
	}
	if h.RoomsAvailable > h.RoomsTotal {
		return fmt.Errorf("%w: rooms_available %d exceeds rooms_total %d",
			ErrInvalidField, h.RoomsAvailable, h.RoomsTotal)
	}
	return nil
}

// AsUpdate returns an update carrying every field of h. The coordinator
// writes hotels back this way so no stored field is lost.
func (h Hotel) AsUpdate() HotelUpdate {
	return HotelUpdate{
		Name:           &h.Name,
		RoomsTotal:     &h.RoomsTotal,
		RoomsAvailable: &h.RoomsAvailable,
	}
}

// HotelUpdate is a partial hotel update; nil fields are left untouched.
type HotelUpdate struct {
	Name           *string
	RoomsTotal     *int
	RoomsAvailable *int
}

func (u HotelUpdate) apply(h *Hotel) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.RoomsTotal != nil {
		h.RoomsTotal = *u.RoomsTotal
	}
	if u.RoomsAvailable != nil {
		h.RoomsAvailable = *u.RoomsAvailable
	}
}

// Customer represents a customer that can hold reservations.
type Customer struct {
	ID      string `json:"customer_id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

func (c Customer) key() string { return c.ID }

// CustomerUpdate is a partial customer update; nil fields are left untouched.
type CustomerUpdate struct {
	Name    *string
	Contact *string
}

func (u CustomerUpdate) apply(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Contact != nil {
		c.Contact = *u.Contact
	}
}

// Reservation links a customer to one room of a hotel, by id only.
type Reservation struct {
	ID         string `json:"reservation_id"`
	HotelID    string `json:"hotel_id"`
	CustomerID string `json:"customer_id"`
	Status     Status `json:"status"`
}

// Cancel marks the reservation as canceled.
func (r *Reservation) Cancel() {
	r.Status = StatusCanceled
}

func (r Reservation) key() string { return r.ID }

// ---------------------------------------------------------------------------
// Stored record decoding
// ---------------------------------------------------------------------------

// Stored records must carry exactly the known fields. Pointer fields tell a
// missing key apart from a zero value.

type hotelRecord struct {
	ID             *string `json:"hotel_id"`
	Name           *string `json:"name"`
	RoomsTotal     *int    `json:"rooms_total"`
	RoomsAvailable *int    `json:"rooms_available"`
}

type customerRecord struct {
	ID      *string `json:"customer_id"`
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
}

type reservationRecord struct {
	ID         *string `json:"reservation_id"`
	HotelID    *string `json:"hotel_id"`
	CustomerID *string `json:"customer_id"`
	Status     *Status `json:"status"`
}

func decodeStrict(raw json.RawMessage, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return nil
}

// decodeAt decodes the record stored under key. A record whose own id
// differs from its key is malformed.
func decodeAt[T any](raw json.RawMessage, key string, decode func(json.RawMessage) (T, error), idOf func(T) string) (T, error) {
	v, err := decode(raw)
	if err != nil {
		return v, err
	}
	if id := idOf(v); id != key {
		var zero T
		return zero, fmt.Errorf("%w: id %q stored under key %q", ErrMalformedRecord, id, key)
	}
	return v, nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: missing field %q", ErrMalformedRecord, name)
}

func decodeHotel(raw json.RawMessage) (Hotel, error) {
	var rec hotelRecord
	if err := decodeStrict(raw, &rec); err != nil {
		return Hotel{}, err
	}
	switch {
	case rec.ID == nil:
		return Hotel{}, missingField("hotel_id")
	case rec.Name == nil:
		return Hotel{}, missingField("name")
	case rec.RoomsTotal == nil:
		return Hotel{}, missingField("rooms_total")
	case rec.RoomsAvailable == nil:
		return Hotel{}, missingField("rooms_available")
	}
	return Hotel{
		ID:             *rec.ID,
		Name:           *rec.Name,
		RoomsTotal:     *rec.RoomsTotal,
		RoomsAvailable: *rec.RoomsAvailable,
	}, nil
}

func decodeCustomer(raw json.RawMessage) (Customer, error) {
	var rec customerRecord
	if err := decodeStrict(raw, &rec); err != nil {
		return Customer{}, err
	}
	switch {
	case rec.ID == nil:
		return Customer{}, missingField("customer_id")
	case rec.Name == nil:
		return Customer{}, missingField("name")
	}
	c := Customer{ID: *rec.ID, Name: *rec.Name}
	if rec.Contact != nil {
		c.Contact = *rec.Contact
	}
	return c, nil
}

// decodeReservation defaults a missing status to ACTIVE, the state every
// reservation is created in.
func decodeReservation(raw json.RawMessage) (Reservation, error) {
	var rec reservationRecord
	if err := decodeStrict(raw, &rec); err != nil {
		return Reservation{}, err
	}
	switch {
	case rec.ID == nil:
		return Reservation{}, missingField("reservation_id")
	case rec.HotelID == nil:
		return Reservation{}, missingField("hotel_id")
	case rec.CustomerID == nil:
		return Reservation{}, missingField("customer_id")
	}
	r := Reservation{
		ID:         *rec.ID,
		HotelID:    *rec.HotelID,
		CustomerID: *rec.CustomerID,
		Status:     StatusActive,
	}
	if rec.Status != nil {
		if !rec.Status.valid() {
			return Reservation{}, fmt.Errorf("%w: unknown status %q", ErrMalformedRecord, *rec.Status)
		}
		r.Status = *rec.Status
	}
	return r, nil
}
