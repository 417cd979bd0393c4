package main

import (
	"fmt"
	"strings"

	"hotel-reservations/booking"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newReservationCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservation",
		Aliases: []string{"res"},
		Short:   "Reserve and release hotel rooms",
	}
	cmd.AddCommand(newReservationCreateCmd(a))
	cmd.AddCommand(newReservationCancelCmd(a))
	cmd.AddCommand(newReservationGetCmd(a))
	cmd.AddCommand(newReservationListCmd(a))
	return cmd
}

func newReservationCreateCmd(a *app) *cobra.Command {
	var r booking.Reservation
	c := &cobra.Command{
		Use:   "create",
		Short: "Reserve one room of a hotel for a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.ID == "" {
				r.ID = newID("R")
			}
			if err := a.mgr.Reservations.Create(r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reserved %s: hotel %s for customer %s\n", r.ID, r.HotelID, r.CustomerID)
			return nil
		},
	}
	c.Flags().StringVar(&r.ID, "id", "", "reservation id (generated when empty)")
	c.Flags().StringVar(&r.HotelID, "hotel", "", "hotel id")
	c.Flags().StringVar(&r.CustomerID, "customer", "", "customer id")
	_ = c.MarkFlagRequired("hotel")
	_ = c.MarkFlagRequired("customer")
	return c
}

func newReservationCancelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel a reservation and release its room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.mgr.Reservations.Cancel(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Canceled %s\n", args[0])
			return nil
		},
	}
}

func newReservationGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.mgr.Reservations.Get(args[0])
			if err := l.Err(booking.KindReservation, args[0]); err != nil {
				return a.fail(err)
			}
			return a.printer(cmd).json(l.Value)
		},
	}
}

func newReservationListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reservations as stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			co := a.mgr.Reservations
			return a.printer(cmd).reservations(co.List(), co.Reservations())
		},
	}
}

func newAuditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check that room availability matches active reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			findings := a.mgr.Audit()
			out := cmd.OutOrStdout()
			if len(findings) == 0 {
				fmt.Fprintln(out, "OK: availability matches active reservations")
				return nil
			}
			for _, f := range findings {
				fmt.Fprintln(out, f)
			}
			return fmt.Errorf("audit found %d problem(s)", len(findings))
		},
	}
}

// newID returns a short id unlikely to collide with existing data, e.g.
// "R1A2B3C".
func newID(prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}
