package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/ui/output"
	"go.trai.ch/py2sec/internal/ui/style"
)

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the report of the last successful build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.LastReport(workDir(cmd))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if report == nil {
				_, _ = fmt.Fprintln(w, "no build report found")
				return nil
			}
			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return printReport(w, report)
		},
	}
	cmd.Flags().Bool("raw", false, "Print the report as JSON")
	return cmd
}

func printReport(w io.Writer, r *domain.BuildReport) error {
	paint := output.NewPainter(output.New(w))

	target := r.Root
	if r.File != "" {
		target = r.File
	}
	lines := []string{
		fmt.Sprintf("%s %s (%s mode, %s)", paint.Bold("py2sec", style.Accent), target, r.Mode, r.Platform),
		fmt.Sprintf("finished %s in %s", r.FinishedAt.Format(time.RFC3339), r.Duration().Round(time.Millisecond)),
	}
	for _, a := range r.Artifacts {
		lines = append(lines, fmt.Sprintf("  %s %s %s %s", paint.Mark(style.MarkArtifact), a.Source, style.Arrow, a.Path))
	}
	for _, a := range r.Copied {
		lines = append(lines, fmt.Sprintf("  %s %s", paint.Mark(style.MarkCopied), a.Path))
	}
	for _, e := range r.Excluded {
		lines = append(lines, fmt.Sprintf("  %s %s (excluded)", paint.Mark(style.MarkExcluded), e))
	}
	lines = append(lines, fmt.Sprintf("%d compiled, %d artifacts, %d copied", len(r.Compiled), len(r.Artifacts), len(r.Copied)))

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
