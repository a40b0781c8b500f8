package presenter

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"inheritance-engine/internal/model"
)

// Text renders a distribution for a reader. It only formats what the
// engine produced and never recomputes a share.
type Text struct {
	printer *message.Printer
}

func NewText(tag language.Tag) *Text {
	return &Text{printer: message.NewPrinter(tag)}
}

func (t *Text) Render(req model.EstateRequest, res model.DistributionResult) string {
	var b strings.Builder

	b.WriteString("INHERITANCE DISTRIBUTION\n\n")
	t.line(&b, "Total estate: %s\n", t.money(req.TotalEstate))
	t.line(&b, "Debts: %s\n", t.money(req.Debts))
	if will, ok := res.Allocation(model.HeirWill); ok {
		t.line(&b, "Bequest: %s (at most 1/3 of the net estate)\n", t.money(will.Amount))
	}
	t.line(&b, "Net estate for distribution: %s\n\n", t.money(res.NetEstate))

	if res.Exhausted() {
		b.WriteString("The shares could not be calculated.\n")
		for _, n := range res.Notes {
			t.line(&b, "%s: %s\n", n.Label, n.Text)
		}
		return b.String()
	}

	b.WriteString("Shares:\n\n")
	for _, a := range res.Allocations {
		t.line(&b, "%s\n", a.Label())
		t.line(&b, "  Amount: %s\n", t.money(a.Amount))
		if a.Count > 1 {
			t.line(&b, "  %s: %s\n", a.UnitLabel(), t.money(a.Each))
		}
		t.line(&b, "  Percent: %s%%\n", percent(a.Percentage))
		t.line(&b, "  Share: %s\n\n", a.Fraction)
	}
	t.line(&b, "Total distributed: %s\n", t.money(res.Total()))

	if len(res.Notes) > 0 {
		b.WriteString("\nNotes:\n\n")
		for _, n := range res.Notes {
			t.line(&b, "%s: %s\n\n", n.Label, n.Text)
		}
	}

	return b.String()
}

func (t *Text) line(b *strings.Builder, format string, args ...any) {
	b.WriteString(t.printer.Sprintf(format, args...))
}

func (t *Text) money(v float64) string {
	return t.printer.Sprintf("%.2f", v)
}

func percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
