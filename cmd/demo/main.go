// Command demo is a minimal splash-screen program exercising the
// render pipeline end to end: a backend, a Terminal, a TuiRunner, and
// one element painting a FIGlet banner.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kormoran/tui"
	"github.com/kormoran/tui/diagnostics"
)

// colorFlag adapts tui.Color to pflag.Value so --fg can be parsed with
// the same hex/index/name grammar tui.ParseColor understands, rather
// than cobra's own string flag plus a manual parse step after Execute.
type colorFlag struct {
	color tui.Color
}

func (f *colorFlag) String() string { return f.color.String() }
func (f *colorFlag) Type() string   { return "color" }
func (f *colorFlag) Set(s string) error {
	c, err := tui.ParseColor(s)
	if err != nil {
		return err
	}
	f.color = c
	return nil
}

var _ pflag.Value = (*colorFlag)(nil)

func main() {
	var headless bool
	var text string
	var tickRate time.Duration
	var dbPath string
	fg := &colorFlag{color: tui.Named("cyan")}

	root := &cobra.Command{
		Use:   "demo",
		Short: "Render a FIGlet banner full-screen until Escape or Ctrl-C",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), headless, text, tickRate, dbPath, fg.color)
		},
	}
	root.Flags().BoolVar(&headless, "headless", false, "use the in-memory backend instead of a real terminal")
	root.Flags().StringVar(&text, "text", "kormoran/tui", "banner text to render")
	root.Flags().DurationVar(&tickRate, "tick-rate", 0, "synthesize tick events at this interval (0 disables)")
	root.Flags().StringVar(&dbPath, "diagnostics-db", "", "record per-frame diagnostics to this SQLite file (empty disables)")
	root.Flags().Var(fg, "fg", "banner foreground color: a name, #rrggbb, or a 0-255 palette index")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, headless bool, text string, tickRate time.Duration, dbPath string, fg tui.Color) error {
	var backend tui.Backend
	if headless {
		backend = tui.NewHeadlessBackend(80, 24)
	} else {
		tb, err := tui.NewTcellBackend()
		if err != nil {
			return err
		}
		backend = tb
	}

	config := tui.NewTuiConfig().WithTickRate(tickRate)

	if dbPath != "" {
		recorder, err := diagnostics.OpenRecorder(dbPath)
		if err != nil {
			return err
		}
		defer recorder.Close()
		config = config.WithRecorder(recorder)
	}

	splash := newSplashElement(text)
	splash.style = tui.NewStyle().Foreground(fg).AddModifier(tui.ModifierBold)

	runner, err := tui.NewTuiRunner(backend, splash, config)
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}
