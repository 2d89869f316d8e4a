package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/canidlogic/mjpg-tools/pkg/mjpeg"
)

// NewIndexCmd creates the index cobra command
func NewIndexCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [path]",
		Short: "write a frame index for a raw M-JPEG stream",
		Long:  "Records the byte offset of every frame in a raw M-JPEG stream to '<path>" + mjpeg.IndexExt + "', overwriting it if present. The index is a 64-bit big-endian frame count followed by one 64-bit big-endian offset per frame. A plain JPEG file indexes as a single frame.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			if path == "" && len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			in, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open file: %v", err)
			}
			defer in.Close()

			out, err := os.Create(path + mjpeg.IndexExt)
			if err != nil {
				return fmt.Errorf("failed to create index file: %v", err)
			}
			defer out.Close()

			ix, err := mjpeg.NewIndexer(out)
			if err != nil {
				return err
			}
			if err := mjpeg.Scan(in, ix); err != nil {
				return err
			}
			if err := ix.Finish(); err != nil {
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("failed to close index file: %v", err)
			}

			slog.InfoContext(ctx, "index written",
				"path", out.Name(),
				"frames", ix.Frames())
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "raw M-JPEG path to index")

	return cmd
}
