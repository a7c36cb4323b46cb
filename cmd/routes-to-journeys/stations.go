package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stationsCmd = &cobra.Command{
	Use:   "stations [query]",
	Short: "List or search the station directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := resolveDirectory()
		if len(args) == 0 {
			for _, opt := range stationOptions(dir) {
				fmt.Println(opt.Key)
			}
			return nil
		}
		matches := dir.Search(args[0])
		if len(matches) == 0 {
			fmt.Println("No stations matched.")
			return nil
		}
		for _, s := range matches {
			fmt.Printf("%s — %s (%s, %s)\n", s.Code, s.Name, s.City, s.Region)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stationsCmd)
}
