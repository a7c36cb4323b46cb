package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/routes-to-journeys/config"
	"github.com/theoremus-urban-solutions/routes-to-journeys/directory"
	"github.com/theoremus-urban-solutions/routes-to-journeys/optimizer"
)

var rootCmd = &cobra.Command{
	Use:   "routes-to-journeys",
	Short: "Search and display multimodal train and flight routes",
	Long: `routes-to-journeys queries a route optimization service, normalizes
whichever payload shape it answers with, and presents the results as
terminal cards or JSON.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newOptimizerClient() *optimizer.Client {
	return optimizer.NewClient(config.Config.Service.BaseURL,
		time.Duration(config.Config.Service.TimeoutMS)*time.Millisecond)
}

func resolveDirectory() directory.Directory {
	if config.Config.Directory.Source == "remote" && config.Config.Directory.URL != "" {
		return directory.NewRemote(config.Config.Directory.URL)
	}
	return directory.Static()
}
