package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmkeyfile/keyfile/pkg/cli"
	"github.com/nmkeyfile/keyfile/pkg/codec"
	"github.com/nmkeyfile/keyfile/pkg/inistore"
	"github.com/nmkeyfile/keyfile/pkg/model"
)

func newReadCmd(app *App) *cobra.Command {
	var baseDir string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Parse a keyfile into a connection and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			store, err := inistore.LoadFile(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}

			handler := func(w codec.Warning) error {
				app.logf("%s %s: %s", w.Severity, warningLocation(w), w.Message)
				return nil
			}
			conn, err := codec.ReadConnection(app.cat, store, path, baseDir, handler)
			if err != nil {
				return err
			}

			if !asJSON {
				printConnectionSummary(cmd, conn)
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(connectionToJSON(conn))
		},
	}
	cmd.Flags().StringVar(&baseDir, "base-dir", "", "base directory for relative certificate paths (default: keyfile's directory if its path is absolute, else the working directory)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the connection as a JSON snapshot")
	return cmd
}

func warningLocation(w codec.Warning) string {
	if w.Property != "" {
		return fmt.Sprintf("%s.%s", w.Setting, w.Property)
	}
	if w.Setting != "" {
		return w.Setting
	}
	return w.Group
}

func printConnectionSummary(cmd *cobra.Command, conn *model.Connection) {
	out := cmd.OutOrStdout()
	for _, s := range conn.Settings() {
		fmt.Fprintln(out, cli.Bold("["+s.Name()+"]"))
		for _, p := range s.Properties() {
			if s.IsDefault(p.Name) {
				continue
			}
			v, _ := s.Get(p.Name)
			fmt.Fprintf(out, "  %s = %v\n", cli.Dim(p.Name), v)
		}
	}
}
