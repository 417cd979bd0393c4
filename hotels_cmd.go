package main

import (
	"fmt"

	"hotel-reservations/booking"

	"github.com/spf13/cobra"
)

func newHotelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Manage hotels",
	}
	cmd.AddCommand(newHotelAddCmd(a))
	cmd.AddCommand(newHotelGetCmd(a))
	cmd.AddCommand(newHotelUpdateCmd(a))
	cmd.AddCommand(newHotelDeleteCmd(a))
	cmd.AddCommand(newHotelListCmd(a))
	return cmd
}

func newHotelAddCmd(a *app) *cobra.Command {
	var (
		h         booking.Hotel
		available int
	)
	c := &cobra.Command{
		Use:   "add",
		Short: "Add a hotel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h.RoomsAvailable = h.RoomsTotal
			if cmd.Flags().Changed("available") {
				h.RoomsAvailable = available
			}
			if err := a.mgr.Hotels.Create(h); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added hotel %s (%d/%d rooms available)\n", h.ID, h.RoomsAvailable, h.RoomsTotal)
			return nil
		},
	}
	c.Flags().StringVar(&h.ID, "id", "", "hotel id")
	c.Flags().StringVar(&h.Name, "name", "", "display name")
	c.Flags().IntVar(&h.RoomsTotal, "rooms", 0, "total rooms")
	c.Flags().IntVar(&available, "available", 0, "rooms available (default: all rooms)")
	_ = c.MarkFlagRequired("id")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("rooms")
	return c
}

func newHotelGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one hotel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.mgr.Hotels.Get(args[0])
			if err := l.Err(booking.KindHotel, args[0]); err != nil {
				return a.fail(err)
			}
			return a.printer(cmd).json(l.Value)
		},
	}
}

func newHotelUpdateCmd(a *app) *cobra.Command {
	var (
		name             string
		total, available int
	)
	c := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a hotel; only the flags given are written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u booking.HotelUpdate
			if cmd.Flags().Changed("name") {
				u.Name = &name
			}
			if cmd.Flags().Changed("rooms") {
				u.RoomsTotal = &total
			}
			if cmd.Flags().Changed("available") {
				u.RoomsAvailable = &available
			}
			if err := a.mgr.Hotels.Update(args[0], u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated hotel %s\n", args[0])
			return nil
		},
	}
	c.Flags().StringVar(&name, "name", "", "display name")
	c.Flags().IntVar(&total, "rooms", 0, "total rooms")
	c.Flags().IntVar(&available, "available", 0, "rooms available")
	return c
}

func newHotelDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a hotel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.mgr.Hotels.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted hotel %s\n", args[0])
			return nil
		},
	}
}

func newHotelListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List hotels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printer(cmd).hotels(a.mgr.Hotels.ListAll(), a.mgr.Hotels.Hotels())
		},
	}
}
