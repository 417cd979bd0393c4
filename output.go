package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"hotel-reservations/booking"
	"hotel-reservations/internal/textutil"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// printer writes listings as aligned tables when stdout is a terminal and
// as the raw stored JSON otherwise, so output can be piped into other tools.
type printer struct {
	w     io.Writer
	table bool
}

func (a *app) printer(cmd *cobra.Command) printer {
	w := cmd.OutOrStdout()
	p := printer{w: w}
	if f, ok := w.(*os.File); ok && !a.jsonOut {
		p.table = term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) hotels(raw booking.Records, hotels []booking.Hotel) error {
	if !p.table {
		return p.json(raw)
	}
	if len(hotels) == 0 {
		fmt.Fprintln(p.w, "No hotels.")
		return nil
	}
	fmt.Fprintf(p.w, "%-12s %-30s %-8s %-9s\n", "ID", "Name", "Total", "Available")
	fmt.Fprintln(p.w, strings.Repeat("-", 62))
	for _, h := range hotels {
		fmt.Fprintf(p.w, "%-12s %-30s %-8d %-9d\n",
			textutil.Truncate(h.ID, 12), textutil.Truncate(h.Name, 30), h.RoomsTotal, h.RoomsAvailable)
	}
	return nil
}

func (p printer) customers(raw booking.Records, customers []booking.Customer) error {
	if !p.table {
		return p.json(raw)
	}
	if len(customers) == 0 {
		fmt.Fprintln(p.w, "No customers.")
		return nil
	}
	fmt.Fprintf(p.w, "%-12s %-30s %s\n", "ID", "Name", "Contact")
	fmt.Fprintln(p.w, strings.Repeat("-", 70))
	for _, c := range customers {
		fmt.Fprintf(p.w, "%-12s %-30s %s\n", textutil.Truncate(c.ID, 12), textutil.Truncate(c.Name, 30), c.Contact)
	}
	return nil
}

func (p printer) reservations(raw booking.Records, reservations []booking.Reservation) error {
	if !p.table {
		return p.json(raw)
	}
	if len(reservations) == 0 {
		fmt.Fprintln(p.w, "No reservations.")
		return nil
	}
	fmt.Fprintf(p.w, "%-12s %-12s %-12s %s\n", "ID", "Hotel", "Customer", "Status")
	fmt.Fprintln(p.w, strings.Repeat("-", 50))
	for _, r := range reservations {
		fmt.Fprintf(p.w, "%-12s %-12s %-12s %s\n",
			textutil.Truncate(r.ID, 12), textutil.Truncate(r.HotelID, 12), textutil.Truncate(r.CustomerID, 12), r.Status)
	}
	return nil
}
