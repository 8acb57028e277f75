package cli

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/inovacc/givr/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// money renders a currency amount with grouped thousands and only the
// fraction digits the value carries, matching how totals are shown.
func money(v float64) string {
	return printer.Sprintf("$%v", number.Decimal(v))
}

// moneyCents renders a currency amount with grouped thousands and exactly
// two fraction digits, used for averages.
func moneyCents(v float64) string {
	return printer.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// percent1 renders a campaign's funding progress with one decimal. The
// arithmetic lives on the model; this only rounds and formats, so the
// label stays unclamped exactly as Campaign.ProgressPercent reports it.
func percent1(c model.Campaign) string {
	p := math.Round(c.ProgressPercent()*10) / 10

	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// barFill returns how many cells of a width-cell bar are filled, from the
// clamped Campaign.ProgressRatio. An overfunded campaign fills the whole
// bar and never overflows it.
func barFill(c model.Campaign, width int) int {
	if width <= 0 {
		return 0
	}

	return int(math.Round(c.ProgressRatio() * float64(width)))
}

// progressBar renders a fixed-width bar.
func progressBar(c model.Campaign, width int) string {
	if width <= 0 {
		return ""
	}

	filled := barFill(c, width)

	return successStyle.Render(strings.Repeat("█", filled)) +
		blurredStyle.Render(strings.Repeat("░", width-filled))
}

// medal returns the rank marker for a top-cities index. Only the first
// three positions carry a marker.
func medal(index int) string {
	switch index {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return ""
	}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
