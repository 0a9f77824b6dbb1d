package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ptyshot/ptyshot/pkg/previewserver"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live-preview WebSocket server",
		Long: "Starts an HTTP server exposing /runs/{runID}/watch as a WebSocket feed.\n" +
			"Pair it with `ptyshot run --live` in another process to stream captures\n" +
			"as they're produced.",
		RunE: func(cmd *cobra.Command, args []string) error {
			hub := previewserver.NewHub()
			server := previewserver.NewServer(hub)
			fmt.Printf("Listening on %s (watch a run at ws://%s/runs/<runID>/watch)\n", addr, addr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8090", "address to listen on")
	return cmd
}
