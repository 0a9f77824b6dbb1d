package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ptyshot/ptyshot/pkg/mockframebuffer"
)

func newMockCommand() *cobra.Command {
	var (
		width, height int
		output        string
		colorHex      string
	)

	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Create a synthetic screenshot for testing downstream tooling",
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := parseHexColor(colorHex)
			if err != nil {
				return err
			}

			fb := mockframebuffer.WithColor(width, height, color)
			fb.DrawText(10, 10, "Mock Framebuffer", [3]byte{255, 255, 255}, color)
			fb.DrawRect(10, 30, 100, 50, [3]byte{128, 128, 128})

			png, w, h, err := fb.Capture()
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return fmt.Errorf("ptyshot: failed to write %q: %w", output, err)
			}

			fmt.Printf("Created mock screenshot: %s\n", output)
			fmt.Printf("  Size: %dx%d\n", w, h)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", 800, "width in pixels")
	cmd.Flags().IntVarP(&height, "height", "H", 600, "height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "./mock_screenshot.png", "output file path")
	cmd.Flags().StringVarP(&colorHex, "color", "c", "000000", "fill color as 6 hex digits")

	return cmd
}

func parseHexColor(hex string) ([3]byte, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return [3]byte{}, fmt.Errorf("ptyshot: color must be 6 hex digits (e.g. \"ff0000\"), got %q", hex)
	}
	var c [3]byte
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]byte{}, fmt.Errorf("ptyshot: invalid color %q: %w", hex, err)
		}
		c[i] = byte(v)
	}
	return c, nil
}
