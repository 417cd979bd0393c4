package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"hotel-reservations/booking"
	"hotel-reservations/config"
	"hotel-reservations/internal/textutil"
)

// fixture is the seed file layout.
type fixture struct {
	Hotels    []fixtureHotel     `json:"hotels"`
	Customers []booking.Customer `json:"customers"`
}

// fixtureHotel tells an omitted rooms_available apart from an explicit 0.
type fixtureHotel struct {
	ID             string `json:"hotel_id"`
	Name           string `json:"name"`
	RoomsTotal     int    `json:"rooms_total"`
	RoomsAvailable *int   `json:"rooms_available"`
}

func (fh fixtureHotel) hotel() booking.Hotel {
	h := booking.Hotel{ID: fh.ID, Name: fh.Name, RoomsTotal: fh.RoomsTotal, RoomsAvailable: fh.RoomsTotal}
	if fh.RoomsAvailable != nil {
		h.RoomsAvailable = *fh.RoomsAvailable
	}
	return h
}

func main() {
	path := "fixtures.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening fixture: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	manager, err := booking.Open(cfg, log.New(os.Stderr, "", 0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stores: %v\n", err)
		os.Exit(1)
	}
	defer manager.Close()

	// Start from empty collections
	fmt.Println("Clearing existing collections...")
	if err := manager.Reset(); err != nil {
		fmt.Printf("Warning: could not clear every collection: %v\n", err)
	}

	fmt.Printf("Importing from %s...\n", path)
	ok, failed, err := importFixture(f, manager, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading fixture: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d records\n", ok)
	fmt.Printf("Errors: %d\n", failed)

	if ok > 0 {
		fmt.Println("\nImported hotels:")
		fmt.Printf("%-12s %-40s %-6s\n", "ID", "Name", "Rooms")
		fmt.Println(strings.Repeat("-", 60))
		for _, h := range manager.Hotels.Hotels() {
			fmt.Printf("%-12s %-40s %-6d\n", textutil.Truncate(h.ID, 12), textutil.Truncate(h.Name, 40), h.RoomsTotal)
		}
	}
}

// importFixture creates every hotel and customer in r, reporting each one to
// out. A hotel without rooms_available starts fully available.
func importFixture(r io.Reader, manager *booking.Manager, out io.Writer) (ok, failed int, err error) {
	var fx fixture
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fx); err != nil {
		return 0, 0, err
	}

	for _, fh := range fx.Hotels {
		h := fh.hotel()
		fmt.Fprintf(out, "Importing hotel: %s (%s)... ", h.Name, h.ID)
		if err := manager.Hotels.Create(h); err != nil {
			fmt.Fprintf(out, "ERROR - %v\n", err)
			failed++
			continue
		}
		fmt.Fprintln(out, "SUCCESS")
		ok++
	}

	for _, c := range fx.Customers {
		fmt.Fprintf(out, "Importing customer: %s (%s)... ", c.Name, c.ID)
		if err := manager.Customers.Create(c); err != nil {
			fmt.Fprintf(out, "ERROR - %v\n", err)
			failed++
			continue
		}
		fmt.Fprintln(out, "SUCCESS")
		ok++
	}
	return ok, failed, nil
}
