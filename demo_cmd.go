package main

import (
	"fmt"
	"io"
	"time"

	"hotel-reservations/booking"

	"github.com/spf13/cobra"
)

// newDemoCmd runs the manual functional flow against the configured stores:
// create a hotel and a customer, reserve, read back, cancel, read back.
// Fresh ids are used so existing data is left alone.
func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a create/reserve/cancel flow and print every result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), a.mgr, time.Now())
		},
	}
}

func runDemo(out io.Writer, mgr *booking.Manager, now time.Time) error {
	fmt.Fprintln(out, "=== Manual Functional Run ===")
	fmt.Fprintln(out, "Timestamp:", now.Format(time.RFC3339))

	fmt.Fprintln(out, "\n[Paths]")
	for _, p := range mgr.Paths() {
		fmt.Fprintln(out, " ", p)
	}

	hotelID, customerID, reservationID := newID("HF"), newID("CF"), newID("RF")
	fmt.Fprintln(out, "\n[Generated IDs]")
	fmt.Fprintln(out, " hotel_id      =", hotelID)
	fmt.Fprintln(out, " customer_id   =", customerID)
	fmt.Fprintln(out, " reservation_id=", reservationID)

	fmt.Fprintln(out, "\n[1] Create hotel")
	err := mgr.Hotels.Create(booking.Hotel{ID: hotelID, Name: "Hotel Funcional", RoomsTotal: 3, RoomsAvailable: 3})
	fmt.Fprintln(out, " create ->", err == nil)

	fmt.Fprintln(out, "\n[2] Create customer")
	err = mgr.Customers.Create(booking.Customer{ID: customerID, Name: "Cliente Funcional"})
	fmt.Fprintln(out, " create ->", err == nil)

	fmt.Fprintln(out, "\n[3] Create reservation")
	err = mgr.Reservations.Create(booking.Reservation{ID: reservationID, HotelID: hotelID, CustomerID: customerID})
	fmt.Fprintln(out, " create ->", err == nil)

	fmt.Fprintln(out, "\n[4] Validate hotel rooms availability decreased")
	printAvailability(out, mgr.Hotels.Get(hotelID))

	fmt.Fprintln(out, "\n[5] Cancel reservation")
	err = mgr.Reservations.Cancel(reservationID)
	fmt.Fprintln(out, " cancel ->", err == nil)

	fmt.Fprintln(out, "\n[6] Validate hotel rooms availability restored")
	printAvailability(out, mgr.Hotels.Get(hotelID))

	fmt.Fprintln(out, "\n[7] Validate reservation status in store")
	if l := mgr.Reservations.Get(reservationID); l.Ok() {
		fmt.Fprintln(out, " status =", l.Value.Status)
	} else {
		fmt.Fprintln(out, " reservation record", l.Status)
	}

	fmt.Fprintln(out, "\n=== Done ===")
	return nil
}

func printAvailability(out io.Writer, l booking.Lookup[booking.Hotel]) {
	if !l.Ok() {
		fmt.Fprintln(out, " get ->", l.Status, "(unexpected)")
		return
	}
	fmt.Fprintln(out, " rooms_total     =", l.Value.RoomsTotal)
	fmt.Fprintln(out, " rooms_available =", l.Value.RoomsAvailable)
}
