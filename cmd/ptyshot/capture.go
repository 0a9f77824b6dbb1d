package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ptyshot/ptyshot/pkg/ptycap"
	"github.com/ptyshot/ptyshot/pkg/ptyshotconfig"
	"github.com/ptyshot/ptyshot/pkg/session"
)

func newCaptureCommand() *cobra.Command {
	var (
		binary string
		outDir string
		keep   bool
		size   string
	)

	cmd := &cobra.Command{
		Use:   "capture --binary BINARY [-- ARGS...]",
		Short: "Capture a single screenshot of a program's initial screen",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ptyshotconfig.Load()
			if size == "" {
				size = cfg.DefaultSize
			}
			parsedSize, err := ptycap.ParseSize(size)
			if err != nil {
				return err
			}
			if binary == "" {
				return fmt.Errorf("ptyshot: --binary is required")
			}

			captures, err := ptycap.Run(ptycap.Options{
				Binary: binary,
				Args:   args,
				Size:   parsedSize,
			})
			if err != nil {
				return err
			}
			if len(captures) == 0 {
				return fmt.Errorf("ptyshot: capture produced no output")
			}
			initial := captures[0]

			root := outDir
			if root == "" {
				root = cfg.SessionDir
			}
			mgr := session.NewManager(root)
			run, err := mgr.NewRun()
			if err != nil {
				return err
			}
			if err := run.WriteCapture(initial.Step, "initial", initial.PNG, initial.Width, initial.Height); err != nil {
				return err
			}
			if err := run.Finish(""); err != nil {
				return err
			}

			fmt.Printf("%s %s\n", styleSuccess("Captured screenshot:"), filepath.Join(run.Path(), "capture_000.png"))
			fmt.Printf("  Size: %dx%d (terminal: %dx%d)\n", initial.Width, initial.Height, parsedSize.Cols, parsedSize.Rows)
			if os.Getenv("PTYSHOT_DUMP_TEXT") != "" {
				fmt.Println(initial.Text)
			}
			if !keep && outDir == "" {
				if err := os.RemoveAll(run.Path()); err != nil {
					fmt.Fprintf(os.Stderr, "ptyshot: failed to clean up run directory %s: %v\n", run.Path(), err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&binary, "binary", "b", "", "path to the binary to capture")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default: auto-generated session dir)")
	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "keep the output directory regardless of retention policy")
	cmd.Flags().StringVarP(&size, "size", "s", "", "terminal size: compact, standard, large, xl, or WxH")

	return cmd
}
