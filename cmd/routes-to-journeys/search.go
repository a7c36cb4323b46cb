package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/routes-to-journeys/category"
	"github.com/theoremus-urban-solutions/routes-to-journeys/formatter"
	"github.com/theoremus-urban-solutions/routes-to-journeys/notify"
	"github.com/theoremus-urban-solutions/routes-to-journeys/search"
	"github.com/theoremus-urban-solutions/routes-to-journeys/store"
)

var (
	infoTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	errorTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// terminalNotifier prints notifications as two-line toasts on stdout.
type terminalNotifier struct{}

func (terminalNotifier) Notify(n notify.Notification) {
	style := infoTitleStyle
	if n.Severity == notify.Error {
		style = errorTitleStyle
	}
	fmt.Printf("%s\n%s\n", style.Render(n.Title), n.Body)
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search routes between two stations",
	Long: `Query the route optimization service for routes between an origin and a
destination station code and print the results as terminal cards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		origin, _ := cmd.Flags().GetString("origin")
		destination, _ := cmd.Flags().GetString("destination")
		maxTransfers, _ := cmd.Flags().GetInt("max-transfers")
		travelDate, _ := cmd.Flags().GetString("date")
		showAll, _ := cmd.Flags().GetBool("all")
		categoryFlag, _ := cmd.Flags().GetString("category")
		asJSON, _ := cmd.Flags().GetBool("json")

		return runSearch(cmd.Context(), search.Request{
			Origin:       origin,
			Destination:  destination,
			MaxTransfers: maxTransfers,
			TravelDate:   travelDate,
		}, showAll, categoryFlag, asJSON)
	},
}

func runSearch(ctx context.Context, req search.Request, showAll bool, categoryFlag string, asJSON bool) error {
	st := store.NewResultStore()
	orch := search.NewOrchestrator(newOptimizerClient(), st, terminalNotifier{})

	var submitErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Searching routes %s → %s...", req.Origin, req.Destination)).
		Action(func() {
			_, submitErr = orch.Submit(ctx, req)
		}).
		Run()
	if submitErr != nil {
		// The notifier already told the user what went wrong.
		return fmt.Errorf("search failed")
	}

	if showAll {
		st.SetDisplayMode(store.ModeAll)
	}
	if categoryFlag != "" {
		st.SetCategoryFilter(category.Classify(categoryFlag))
	}

	view := formatter.BuildView(st, resolveDirectory())
	if asJSON {
		fmt.Println(string(formatter.NewResponseBuilder().BuildJSON(view)))
		return nil
	}
	fmt.Println(formatter.RenderCards(view))
	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("origin", "o", "", "Origin station code (e.g. NDLS)")
	searchCmd.Flags().StringP("destination", "d", "", "Destination station code (e.g. BCT)")
	searchCmd.Flags().IntP("max-transfers", "t", 3, "Maximum number of transfers")
	searchCmd.Flags().String("date", "", "Travel date (YYYY-MM-DD), passed through to the service")
	searchCmd.Flags().BoolP("all", "a", false, "Show every generated route instead of the optimal set")
	searchCmd.Flags().StringP("category", "c", "", "Only show routes in this category (e.g. FASTEST)")
	searchCmd.Flags().Bool("json", false, "Print the result view as JSON instead of cards")
}
