// Command keyfileconv reads and writes NetworkManager-style connection
// keyfiles, translating between the on-disk INI grammar and a JSON
// connection snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmkeyfile/keyfile/pkg/catalog"
	"github.com/nmkeyfile/keyfile/pkg/cli"
	"github.com/nmkeyfile/keyfile/pkg/util"
)

// App holds the CLI's shared state, built once in PersistentPreRunE.
type App struct {
	cat     *catalog.Catalog
	verbose bool
}

func (a *App) logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func main() {
	app := &App{}
	root := newRootCmd(app)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Red(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "keyfileconv",
		Short:         "Translate NetworkManager-style connection keyfiles to and from JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if app.verbose {
				level = "debug"
			}
			if err := util.SetLogLevel(level); err != nil {
				return err
			}
			app.cat = catalog.Default()
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newReadCmd(app))
	root.AddCommand(newWriteCmd(app))
	root.AddCommand(newLintCmd(app))
	return root
}
