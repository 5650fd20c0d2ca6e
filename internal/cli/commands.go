package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"BalanceSentinel/internal/collector"
	"BalanceSentinel/internal/diagnosis"
	"BalanceSentinel/internal/model"
	"BalanceSentinel/internal/notifier"
)

// Output formats.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

type diagnoseCmd struct {
	snapshotPath string
	format       string
	out          io.Writer
}

// NewRootCmd builds the diagnose command tree writing to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	dc := &diagnoseCmd{out: out}
	cmd := &cobra.Command{
		Use:          "diagnose",
		Short:        "Diagnose the financial health of a balance-sheet snapshot",
		RunE:         dc.run,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&dc.format, "format", FormatAuto, "Output format: auto, text or json")
	cmd.Flags().StringVar(&dc.snapshotPath, "snapshot", "", "Path to the snapshot YAML/JSON file")
	_ = cmd.MarkFlagRequired("snapshot")

	cmd.AddCommand(&cobra.Command{
		Use:   "sample",
		Short: "Diagnose the built-in sample snapshot",
		RunE: func(c *cobra.Command, _ []string) error {
			return dc.collect(c.Context(), collector.NewMockSource())
		},
	})
	return cmd
}

func (dc *diagnoseCmd) run(cmd *cobra.Command, _ []string) error {
	return dc.collect(cmd.Context(), collector.NewFileSource(dc.snapshotPath))
}

func (dc *diagnoseCmd) collect(ctx context.Context, src collector.Source) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	snap, err := collector.NewCollector(src).Collect(ctx)
	if err != nil {
		return err
	}
	return dc.render(diagnosis.Evaluate(snap))
}

func (dc *diagnoseCmd) render(d *model.Diagnosis) error {
	format := dc.format
	if format == FormatAuto {
		format = FormatJSON
		if isTerminal(dc.out) {
			format = FormatText
		}
	}

	switch format {
	case FormatText:
		_, err := io.WriteString(dc.out, PlainText(notifier.FormatDiagnosisReport(d)))
		return err
	case FormatJSON:
		enc := json.NewEncoder(dc.out)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return fmt.Errorf("unsupported format %q (want auto, text or json)", dc.format)
	}
}

// PlainText strips the Telegram HTML markup from a report.
func PlainText(s string) string {
	return html.UnescapeString(strings.NewReplacer("<b>", "", "</b>", "").Replace(s))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
