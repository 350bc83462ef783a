// Command tl inspects and combines step-function timelines stored as CSV
// files with start,end,value rows and RFC 3339 timestamps.
package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jack-kerouac/go-timeline/timeline"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tl",
		Short:         "Inspect and combine step-function timelines stored as CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newShowCmd(), newMergeCmd(), newSliceCmd(), newCrossCmd())
	return root
}

func newShowCmd() *cobra.Command {
	var fillGaps bool
	var gapValue string
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Validate a segment file and print it in canonical order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segs, err := readSegments(args[0])
			if err != nil {
				return err
			}
			var tl *timeline.Timeline[string]
			if fillGaps {
				tl, err = timeline.FromSegmentsWithGaps(segs, gapValue)
			} else {
				tl, err = timeline.FromSegments(segs)
			}
			if err != nil {
				return err
			}
			slog.Info("loaded timeline", "file", args[0], "segments", tl.Len())
			return writeTimeline(cmd.OutOrStdout(), tl)
		},
	}
	cmd.Flags().BoolVar(&fillGaps, "fill-gaps", false, "bridge gaps between segments instead of failing")
	cmd.Flags().StringVar(&gapValue, "gap-value", "", "value for synthetic gap segments")
	return cmd
}

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE",
		Short: "Consolidate consecutive segments holding the same value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := loadTimeline(args[0])
			if err != nil {
				return err
			}
			merged := timeline.MergeAdjacent(tl)
			slog.Info("merged timeline", "file", args[0], "before", tl.Len(), "after", merged.Len())
			return writeTimeline(cmd.OutOrStdout(), merged)
		},
	}
}

func newSliceCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "slice FILE --from TIME --to TIME",
		Short: "Extract the sub-timeline covering [from, to)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(time.RFC3339, from)
			if err != nil {
				return err
			}
			end, err := time.Parse(time.RFC3339, to)
			if err != nil {
				return err
			}
			tl, err := loadTimeline(args[0])
			if err != nil {
				return err
			}
			sliced, err := tl.Slice(start, end)
			if err != nil {
				return err
			}
			return writeTimeline(cmd.OutOrStdout(), sliced)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "inclusive start of the range (RFC 3339)")
	cmd.Flags().StringVar(&to, "to", "", "exclusive end of the range (RFC 3339)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func newCrossCmd() *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "cross FILE...",
		Short: "Align timelines covering the same duration into one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timelines := make([]*timeline.Timeline[string], len(args))
			for i, path := range args {
				tl, err := loadTimeline(path)
				if err != nil {
					return err
				}
				timelines[i] = tl
			}
			crossed, err := timeline.CrossProduct(timelines)
			if err != nil {
				return err
			}
			slog.Info("crossed timelines", "inputs", len(args), "segments", crossed.Len())
			joined := timeline.Map(crossed, func(values []string) string {
				return strings.Join(values, sep)
			})
			return writeTimeline(cmd.OutOrStdout(), joined)
		},
	}
	cmd.Flags().StringVar(&sep, "sep", "|", "separator between joined values")
	return cmd
}
