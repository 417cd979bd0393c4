package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hotel-reservations/booking"

	"github.com/spf13/cobra"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive prompt for hotels, customers and reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := &shell{
				sc:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
				mgr: a.mgr,
				p:   a.printer(cmd),
			}
			sh.run()
			return nil
		},
	}
}

type shell struct {
	sc  *bufio.Scanner
	out io.Writer
	mgr *booking.Manager
	p   printer
}

func (s *shell) run() {
	fmt.Fprintln(s.out, "Welcome to the Hotel Reservation System!")
	fmt.Fprintln(s.out, "Available commands:")
	fmt.Fprintln(s.out, "  Hotels: add hotel, get hotel, list hotels, update hotel, delete hotel")
	fmt.Fprintln(s.out, "  Customers: add customer, get customer, list customers, update customer, delete customer")
	fmt.Fprintln(s.out, "  Reservations: reserve, cancel, get reservation, list reservations")
	fmt.Fprintln(s.out, "  System: audit, exit")

	for {
		fmt.Fprint(s.out, "\n> ")
		if !s.sc.Scan() {
			break
		}
		cmd := strings.TrimSpace(s.sc.Text())

		switch cmd {
		case "add hotel":
			s.handleAddHotel()
		case "get hotel":
			if id, ok := s.prompt("Hotel ID: "); ok {
				l := s.mgr.Hotels.Get(id)
				s.show(l.Value, l.Err(booking.KindHotel, id))
			}
		case "list hotels":
			s.p.hotels(s.mgr.Hotels.ListAll(), s.mgr.Hotels.Hotels())
		case "update hotel":
			s.handleUpdateHotel()
		case "delete hotel":
			if id, ok := s.prompt("Hotel ID: "); ok {
				s.result(s.mgr.Hotels.Delete(id), "Deleted hotel "+id)
			}
		case "add customer":
			s.handleAddCustomer()
		case "get customer":
			if id, ok := s.prompt("Customer ID: "); ok {
				l := s.mgr.Customers.Get(id)
				s.show(l.Value, l.Err(booking.KindCustomer, id))
			}
		case "list customers":
			s.p.customers(s.mgr.Customers.ListAll(), s.mgr.Customers.Customers())
		case "update customer":
			s.handleUpdateCustomer()
		case "delete customer":
			if id, ok := s.prompt("Customer ID: "); ok {
				s.result(s.mgr.Customers.Delete(id), "Deleted customer "+id)
			}
		case "reserve":
			s.handleReserve()
		case "cancel":
			if id, ok := s.prompt("Reservation ID: "); ok {
				s.result(s.mgr.Reservations.Cancel(id), "Canceled "+id)
			}
		case "get reservation":
			if id, ok := s.prompt("Reservation ID: "); ok {
				l := s.mgr.Reservations.Get(id)
				s.show(l.Value, l.Err(booking.KindReservation, id))
			}
		case "list reservations":
			s.p.reservations(s.mgr.Reservations.List(), s.mgr.Reservations.Reservations())
		case "audit":
			s.handleAudit()
		case "":
			continue
		case "exit":
			fmt.Fprintln(s.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(s.out, "Unknown command. Type one of the available commands listed above.")
		}
	}
}

// prompt asks for one line. ok is false once input is exhausted.
func (s *shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

func (s *shell) promptInt(label string) (int, bool) {
	v, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid number: %s\n", v)
		return 0, false
	}
	return n, true
}

func (s *shell) result(err error, success string) {
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, success)
}

// show prints v as JSON, or err when the lookup failed.
func (s *shell) show(v any, err error) {
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if err := s.p.json(v); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *shell) handleAddHotel() {
	id, ok := s.prompt("Hotel ID: ")
	if !ok {
		return
	}
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	total, ok := s.promptInt("Total rooms: ")
	if !ok {
		return
	}
	h := booking.Hotel{ID: id, Name: name, RoomsTotal: total, RoomsAvailable: total}
	s.result(s.mgr.Hotels.Create(h), fmt.Sprintf("Added hotel %s with %d rooms", id, total))
}

// handleUpdateHotel leaves a field untouched when its answer is blank.
func (s *shell) handleUpdateHotel() {
	id, ok := s.prompt("Hotel ID: ")
	if !ok {
		return
	}
	var u booking.HotelUpdate
	name, ok := s.prompt("New name (blank to keep): ")
	if !ok {
		return
	}
	if name != "" {
		u.Name = &name
	}
	for _, field := range []struct {
		label string
		dst   **int
	}{
		{"New total rooms (blank to keep): ", &u.RoomsTotal},
		{"New rooms available (blank to keep): ", &u.RoomsAvailable},
	} {
		v, ok := s.prompt(field.label)
		if !ok {
			return
		}
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid number: %s\n", v)
			return
		}
		*field.dst = &n
	}
	s.result(s.mgr.Hotels.Update(id, u), "Updated hotel "+id)
}

func (s *shell) handleAddCustomer() {
	id, ok := s.prompt("Customer ID: ")
	if !ok {
		return
	}
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	contact, ok := s.prompt("Contact (optional): ")
	if !ok {
		return
	}
	c := booking.Customer{ID: id, Name: name, Contact: contact}
	s.result(s.mgr.Customers.Create(c), fmt.Sprintf("Added customer '%s' with ID %s", name, id))
}

// handleUpdateCustomer leaves a field untouched when its answer is blank.
func (s *shell) handleUpdateCustomer() {
	id, ok := s.prompt("Customer ID: ")
	if !ok {
		return
	}
	var u booking.CustomerUpdate
	name, ok := s.prompt("New name (blank to keep): ")
	if !ok {
		return
	}
	if name != "" {
		u.Name = &name
	}
	contact, ok := s.prompt("New contact (blank to keep): ")
	if !ok {
		return
	}
	if contact != "" {
		u.Contact = &contact
	}
	s.result(s.mgr.Customers.Update(id, u), "Updated customer "+id)
}

func (s *shell) handleReserve() {
	hotelID, ok := s.prompt("Hotel ID: ")
	if !ok {
		return
	}
	customerID, ok := s.prompt("Customer ID: ")
	if !ok {
		return
	}
	id, ok := s.prompt("Reservation ID (blank to generate): ")
	if !ok {
		return
	}
	if id == "" {
		id = newID("R")
	}
	err := s.mgr.Reservations.Create(booking.Reservation{ID: id, HotelID: hotelID, CustomerID: customerID})
	if err != nil {
		fmt.Fprintf(s.out, "Error reserving room: %v\n", err)
		return
	}
	if l := s.mgr.Hotels.Get(hotelID); l.Ok() {
		fmt.Fprintf(s.out, "Reserved %s at '%s' (%d of %d rooms left)\n",
			id, l.Value.Name, l.Value.RoomsAvailable, l.Value.RoomsTotal)
		return
	}
	fmt.Fprintf(s.out, "Reserved %s\n", id)
}

func (s *shell) handleAudit() {
	findings := s.mgr.Audit()
	if len(findings) == 0 {
		fmt.Fprintln(s.out, "OK: availability matches active reservations")
		return
	}
	for _, f := range findings {
		fmt.Fprintln(s.out, f)
	}
}
