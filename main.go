package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"hotel-reservations/booking"
	"hotel-reservations/config"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

// app carries what every subcommand needs once the root has opened the
// stores.
type app struct {
	cfg    config.Config
	mgr    *booking.Manager
	logger *log.Logger

	dataDir  string
	backend  string
	dbPath   string
	jsonOut  bool
	envFiles []string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Manage hotels, customers and room reservations stored in flat files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.dataDir, "data-dir", "", "directory for the JSON collection files (env HOTEL_DATA_DIR)")
	flags.StringVar(&a.backend, "backend", "", "record store backend: json or sqlite (env HOTEL_BACKEND)")
	flags.StringVar(&a.dbPath, "db", "", "sqlite database path (env HOTEL_DB_PATH)")
	flags.BoolVar(&a.jsonOut, "json", false, "always print JSON, even on a terminal")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newHotelCmd(a))
	root.AddCommand(newCustomerCmd(a))
	root.AddCommand(newReservationCmd(a))
	root.AddCommand(newAuditCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newShellCmd(a))
	return root
}

func (a *app) open(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.backend != "" {
		cfg.Backend = config.Backend(strings.ToLower(strings.TrimSpace(a.backend)))
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}

	a.cfg = cfg
	a.logger = log.New(cmd.ErrOrStderr(), "", 0)
	a.mgr, err = booking.Open(cfg, a.logger)
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hotelctl %s (commit=%s)\n", Version, CommitSHA)
		},
	}
}

// fail prints err as an advisory, the way the booking package reports its
// own failures, and returns it.
func (a *app) fail(err error) error {
	a.logger.Printf("[ERROR] %v", err)
	return err
}

// execute runs the command line in args and closes the stores afterwards.
func execute(args []string, in io.Reader, out, errOut io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if a.mgr != nil {
		if cerr := a.mgr.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// alreadyReported reports whether the booking package has logged err as an
// advisory, so it need not be printed twice.
func alreadyReported(err error) bool {
	for _, target := range []error{
		booking.ErrDuplicateID,
		booking.ErrNotFound,
		booking.ErrInvalidField,
		booking.ErrExhausted,
		booking.ErrMalformedRecord,
		booking.ErrPersistence,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func main() {
	if err := execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !alreadyReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
