package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmkeyfile/keyfile/pkg/codec"
)

func newWriteCmd(app *App) *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "write <connection.json> <path>",
		Short: "Write a JSON connection snapshot out as a keyfile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshotPath, outPath := args[0], args[1]

			data, err := os.ReadFile(snapshotPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", snapshotPath, err)
			}
			var snapshot jsonConnection
			if err := json.Unmarshal(data, &snapshot); err != nil {
				return fmt.Errorf("parsing %s: %w", snapshotPath, err)
			}
			conn, err := connectionFromJSON(app.cat, snapshot)
			if err != nil {
				return err
			}

			handler := func(w codec.Warning) error {
				app.logf("%s %s: %s", w.Severity, warningLocation(w), w.Message)
				return nil
			}
			store, err := codec.WriteConnection(app.cat, conn, basicVerifier, baseDir, handler, nil)
			if err != nil {
				return err
			}
			if err := store.WriteFile(outPath); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseDir, "base-dir", "", "base directory for relative certificate paths (default: working directory)")
	return cmd
}
