package booking

import (
	"fmt"
	"log"
)

// HotelDirectory is what the coordinator needs from the hotel repository.
type HotelDirectory interface {
	Get(id string) Lookup[Hotel]
	Update(id string, u HotelUpdate) error
}

// CustomerDirectory is what the coordinator needs from the customer
// repository.
type CustomerDirectory interface {
	Get(id string) Lookup[Customer]
}

// Coordinator owns the reservation collection and is the only code path
// that changes a hotel's room availability. rooms_total - rooms_available of
// a hotel equals the number of its ACTIVE reservations as long as every
// change goes through Create and Cancel.
//
// Create and Cancel write two collections one after the other with no
// rollback. If the hotel write lands and the reservation write fails, the
// room stays taken with no reservation behind it; Audit reports the drift.
// Callers must not run two coordinators against the same stores
// concurrently.
type Coordinator struct {
	c         collection[Reservation]
	hotels    HotelDirectory
	customers CustomerDirectory
}

func NewCoordinator(store RecordStore, hotels HotelDirectory, customers CustomerDirectory, logger *log.Logger) *Coordinator {
	return &Coordinator{
		c: collection[Reservation]{
			kind:   KindReservation,
			store:  store,
			logger: loggerOrDefault(logger),
			decode: decodeReservation,
			idOf:   Reservation.key,
		},
		hotels:    hotels,
		customers: customers,
	}
}

// Create books one room of res.HotelID for res.CustomerID. The incoming
// status is ignored; new reservations are always ACTIVE.
//
// Checks run in order and stop at the first failure: duplicate id, hotel
// exists, customer exists, a room is available. Nothing is written unless
// all of them pass.
func (co *Coordinator) Create(res Reservation) error {
	logger := co.c.logger
	if res.ID == "" {
		return fail(logger, emptyID(KindReservation))
	}

	reservations := co.c.store.Load()
	if _, ok := reservations[res.ID]; ok {
		return fail(logger, duplicate(KindReservation, res.ID))
	}

	hotel := co.hotels.Get(res.HotelID)
	if err := hotel.OrNotFound(KindHotel, res.HotelID); err != nil {
		return fail(logger, err)
	}
	customer := co.customers.Get(res.CustomerID)
	if err := customer.OrNotFound(KindCustomer, res.CustomerID); err != nil {
		return fail(logger, err)
	}

	h := hotel.Value
	if !h.ReserveRoom() {
		return fail(logger, fmt.Errorf("%w: hotel %q", ErrExhausted, res.HotelID))
	}
	if err := co.hotels.Update(res.HotelID, h.AsUpdate()); err != nil {
		return err
	}

	res.Status = StatusActive
	if err := co.c.put(reservations, res.ID, res); err != nil {
		logger.Printf("[ERROR] hotel %q lost a room: reservation %q was not persisted", res.HotelID, res.ID)
		return err
	}
	return nil
}

// Cancel releases the room held by an ACTIVE reservation and marks it
// CANCELED. Canceling an already canceled reservation succeeds without
// touching the hotel.
func (co *Coordinator) Cancel(id string) error {
	logger := co.c.logger
	reservations := co.c.store.Load()
	lookup := co.c.lookup(reservations, id)
	if err := lookup.Err(KindReservation, id); err != nil {
		return fail(logger, err)
	}

	res := lookup.Value
	if res.Status == StatusCanceled {
		warnf(logger, "Reservation %q already canceled.", id)
		return nil
	}

	hotel := co.hotels.Get(res.HotelID)
	if err := hotel.OrNotFound(KindHotel, res.HotelID); err != nil {
		return fail(logger, err)
	}

	h := hotel.Value
	if !h.ReleaseRoom() {
		warnf(logger, "Hotel %q already at capacity (%d rooms); availability capped at capacity.", res.HotelID, h.RoomsTotal)
	}
	if err := co.hotels.Update(res.HotelID, h.AsUpdate()); err != nil {
		return err
	}

	res.Cancel()
	if err := co.c.put(reservations, id, res); err != nil {
		logger.Printf("[ERROR] hotel %q regained a room but reservation %q is still ACTIVE in storage", res.HotelID, id)
		return err
	}
	return nil
}

// Get reads a single reservation.
func (co *Coordinator) Get(id string) Lookup[Reservation] { return co.c.get(id) }

// List returns every stored reservation exactly as persisted, with no
// filtering.
func (co *Coordinator) List() Records { return co.c.store.Load() }

// Reservations returns every well-formed reservation ordered by id.
func (co *Coordinator) Reservations() []Reservation { return co.c.all() }
