// Command replay prints the frame diagnostics recorded by `demo
// --diagnostics-db`, newest first.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kormoran/tui/diagnostics"
)

func main() {
	var limit int

	root := &cobra.Command{
		Use:   "replay <diagnostics.db>",
		Short: "List recorded frame diagnostics from a demo session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], limit)
		},
	}
	root.Flags().IntVar(&limit, "limit", 50, "maximum number of frames to show")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, limit int) error {
	recorder, err := diagnostics.OpenRecorder(path)
	if err != nil {
		return err
	}
	defer recorder.Close()

	frames, err := recorder.Recent(limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECORDED AT\tSIZE\tUPDATES\tDURATION\tERROR")
	for _, f := range frames {
		errText := f.Error
		if errText == "" {
			errText = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%dx%d\t%d\t%s\t%s\n",
			f.ID, f.RecordedAt.Format("15:04:05.000"), f.Width, f.Height, f.Updates, f.Duration, errText)
	}
	return w.Flush()
}
