package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmkeyfile/keyfile/pkg/cli"
	"github.com/nmkeyfile/keyfile/pkg/codec"
	"github.com/nmkeyfile/keyfile/pkg/inistore"
	"github.com/nmkeyfile/keyfile/pkg/util"
)

// newLintCmd reads a keyfile with a strict handler: any SeverityWarn
// latches a veto and aborts the read, surfacing every problem that a
// lenient read would otherwise silently paper over.
func newLintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint <path>",
		Short: "Read a keyfile and fail on the first WARN-severity warning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			store, err := inistore.LoadFile(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}

			handler := func(w codec.Warning) error {
				if w.Severity != codec.SeverityWarn {
					app.logf("%s %s: %s", w.Severity, warningLocation(w), w.Message)
					return nil
				}
				return fmt.Errorf("%s: %s", warningLocation(w), w.Message)
			}

			conn, err := codec.ReadConnection(app.cat, store, path, "", handler)
			if err != nil {
				var vetoErr *util.VetoError
				if errors.As(err, &vetoErr) {
					fmt.Fprintln(cmd.OutOrStdout(), cli.Red(vetoErr.Error()))
					return err
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d settings, no warnings\n",
				cli.Green("ok"), path, len(conn.Settings()))
			return nil
		},
	}
	return cmd
}
