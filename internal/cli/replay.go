package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/outlet/pkg/outlet/manifest"
)

var replayKeepGoing bool

// replayCmd runs navigation steps against a manifest and prints each mount.
var replayCmd = &cobra.Command{
	Use:   "replay <step>...",
	Short: "Replay navigation steps and show where each view is mounted",
	Long: `Replay navigation steps against the route manifest.

Steps:
  push:/path          push a pathname
  push:/path:outlet   push a pathname and open its outlet
  back, forward       move through history (delivered as a history pop)
  go:N                move N entries (negative goes back)

After each step the mount container and the document HTML are printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := make([]step, 0, len(args))
		for _, arg := range args {
			st, err := parseStep(arg)
			if err != nil {
				return err
			}
			steps = append(steps, st)
		}

		m, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}

		s, err := newSession(m)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		results := make([]stepResult, 0, len(steps))
		var firstErr error

		for i, st := range steps {
			res, err := s.run(st)
			results = append(results, res)

			if !jsonOutput {
				printSection(out, fmt.Sprintf("%d. %s", i+1, args[i]))
				printLabelValue(out, "Location", res.Pathname)
				switch {
				case err != nil:
					printError(out, err.Error())
				case !res.Moved:
					printLabelValue(out, "Mounted", "nothing (no history entry)")
				default:
					mode := "replaced, not cleared"
					if res.Cleared {
						mode = "cleared"
					}
					printSuccess(out, fmt.Sprintf("mounted into %q (%s)", res.Container, mode))
				}
				printLabelValue(out, "Document", res.HTML)
			}

			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("step %d (%s): %w", i+1, args[i], err)
				}
				if !replayKeepGoing {
					break
				}
			}
		}

		if jsonOutput {
			if err := outputJSON(out, results); err != nil {
				return err
			}
		}

		return firstErr
	},
}

func init() {
	replayCmd.Flags().BoolVarP(&replayKeepGoing, "keep-going", "k", false, "Continue after a failed navigation")
}
