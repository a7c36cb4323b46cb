package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/routes-to-journeys/config"
	"github.com/theoremus-urban-solutions/routes-to-journeys/directory"
	"github.com/theoremus-urban-solutions/routes-to-journeys/search"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Pick stations interactively and search",
	Long:  `Choose origin and destination from the station directory, then run the search and browse the result cards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

func stationOptions(dir directory.Directory) []huh.Option[string] {
	static, ok := dir.(*directory.StaticDirectory)
	if !ok {
		static = directory.Static()
	}
	var opts []huh.Option[string]
	for _, s := range static.All() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s — %s (%s)", s.Code, s.Name, s.City), s.Code))
	}
	return opts
}

func runInteractive(cmd *cobra.Command) error {
	dir := resolveDirectory()
	opts := stationOptions(dir)

	var (
		origin       string
		destination  string
		transfersRaw = strconv.Itoa(config.Config.Service.MaxTransfers)
		swap         bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("🚉 Origin station").
				Options(opts...).
				Value(&origin),
			huh.NewSelect[string]().
				Title("🏁 Destination station").
				Options(opts...).
				Value(&destination),
			huh.NewInput().
				Title("Max transfers").
				Value(&transfersRaw).
				Validate(func(s string) error {
					v, err := strconv.Atoi(s)
					if err != nil || v < 0 {
						return fmt.Errorf("must be a non-negative integer")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Swap origin and destination?").
				Value(&swap),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if swap {
		origin, destination = destination, origin
	}
	maxTransfers, _ := strconv.Atoi(transfersRaw)

	return runSearch(cmd.Context(), search.Request{
		Origin:       origin,
		Destination:  destination,
		MaxTransfers: maxTransfers,
	}, false, "", false)
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
