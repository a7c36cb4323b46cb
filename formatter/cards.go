package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theoremus-urban-solutions/routes-to-journeys/category"
	"github.com/theoremus-urban-solutions/routes-to-journeys/journey"
	"github.com/theoremus-urban-solutions/routes-to-journeys/utils"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	recommendedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("205"))

	recommendedTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Render("RECOMMENDED")

	fareStyle = lipgloss.NewStyle().Bold(true)
	timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderCards renders the visible routes as bordered terminal cards.
func RenderCards(view ResultView) string {
	if len(view.Routes) == 0 {
		return dimStyle.Render("No routes to display.")
	}

	var b strings.Builder
	for i, rv := range view.Routes {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderCard(rv))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderCard(rv RouteView) string {
	r := rv.Route
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(category.Color(rv.Category))).
		Bold(true).
		Padding(0, 1).
		Render(r.CategoryLabel)

	header := badge
	if rv.Recommended {
		header += "  " + recommendedTag
	}
	header += "  " + fareStyle.Render(utils.FormatFare(r.Objectives.TotalFare))

	first := r.Segments[0]
	last := r.Segments[len(r.Segments)-1]
	legLine := fmt.Sprintf("%s %s  →  %s %s",
		timeStyle.Render(first.DepartureTime), rv.OriginName,
		timeStyle.Render(last.ArrivalTime), rv.DestinationName)

	statsLine := dimStyle.Render(fmt.Sprintf("%s · %.0f km · %s · seats %.0f%% · safety %.0f",
		utils.FormatDuration(r.Objectives.TotalTimeMin),
		r.Objectives.TotalDistanceKm,
		transferLabel(r.Objectives.TransferCount),
		r.Objectives.SeatProbabilityPct,
		r.Objectives.SafetyScore))

	lines := []string{header, legLine, statsLine}
	for i, seg := range r.Segments {
		lines = append(lines, renderSegment(i+1, seg))
	}

	style := cardStyle
	if rv.Recommended {
		style = recommendedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderSegment(n int, seg journey.Segment) string {
	icon := "🚂"
	if seg.Mode == journey.ModeAir {
		icon = "✈️"
	}
	line := fmt.Sprintf("%d. %s %s  %s %s → %s %s (%s)",
		n, icon, seg.CarrierLabel,
		seg.OriginCode, timeStyle.Render(seg.DepartureTime),
		seg.DestinationCode, timeStyle.Render(seg.ArrivalTime),
		utils.FormatDuration(float64(seg.DurationMin)))
	if seg.WaitBeforeMin > 0 {
		line += dimStyle.Render(fmt.Sprintf(" wait %s", utils.FormatDuration(float64(seg.WaitBeforeMin))))
	}
	return line
}

func transferLabel(n int) string {
	if n == 1 {
		return "1 transfer"
	}
	return fmt.Sprintf("%d transfers", n)
}
