package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/canidlogic/mjpg-tools/pkg/mjpeg"
)

// NewTraceCmd creates the trace cobra command
func NewTraceCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [path]",
		Short: "print every marker in a JPEG or raw M-JPEG stream",
		Long:  "Walks the marker stream and prints one line per marker, including immediate markers found inside compressed scan data. Works on plain JPEG files and raw M-JPEG streams; AVI and QuickTime containers are not supported.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			if path == "" && len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			var in io.Reader
			if path == "-" {
				in = os.Stdin
			} else {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open file: %v", err)
				}
				defer f.Close()
				in = f
			}

			tr := mjpeg.NewTracer(cmd.OutOrStdout())
			if err := mjpeg.Scan(in, tr); err != nil {
				return err
			}
			return tr.Finish()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "JPEG or raw M-JPEG path to trace ('-' for stdin)")

	return cmd
}
