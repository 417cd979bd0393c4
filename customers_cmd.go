package main

import (
	"fmt"

	"hotel-reservations/booking"

	"github.com/spf13/cobra"
)

func newCustomerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers",
	}
	cmd.AddCommand(newCustomerAddCmd(a))
	cmd.AddCommand(newCustomerGetCmd(a))
	cmd.AddCommand(newCustomerUpdateCmd(a))
	cmd.AddCommand(newCustomerDeleteCmd(a))
	cmd.AddCommand(newCustomerListCmd(a))
	return cmd
}

func newCustomerAddCmd(a *app) *cobra.Command {
	var c booking.Customer
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.mgr.Customers.Create(c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added customer %s\n", c.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&c.ID, "id", "", "customer id")
	cmd.Flags().StringVar(&c.Name, "name", "", "display name")
	cmd.Flags().StringVar(&c.Contact, "contact", "", "optional contact (email, phone)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCustomerGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.mgr.Customers.Get(args[0])
			if err := l.Err(booking.KindCustomer, args[0]); err != nil {
				return a.fail(err)
			}
			return a.printer(cmd).json(l.Value)
		},
	}
}

func newCustomerUpdateCmd(a *app) *cobra.Command {
	var name, contact string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a customer; only the flags given are written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u booking.CustomerUpdate
			if cmd.Flags().Changed("name") {
				u.Name = &name
			}
			if cmd.Flags().Changed("contact") {
				u.Contact = &contact
			}
			if err := a.mgr.Customers.Update(args[0], u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated customer %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&contact, "contact", "", "contact")
	return cmd
}

func newCustomerDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.mgr.Customers.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted customer %s\n", args[0])
			return nil
		},
	}
}

func newCustomerListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printer(cmd).customers(a.mgr.Customers.ListAll(), a.mgr.Customers.Customers())
		},
	}
}
