package main

import (
	"github.com/spf13/cobra"

	lib "github.com/theoremus-urban-solutions/routes-to-journeys"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP facade",
	Long:  `Serve /api/search, /api/stations and /api/health until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib.StartServer()
		lib.HandleGracefulShutdown()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
