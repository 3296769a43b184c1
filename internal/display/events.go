package display

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/checkpoint/internal/llm"
	"github.com/abhisek/checkpoint/internal/store"
	"github.com/abhisek/checkpoint/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04:05"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Rule)).
		BorderColumn(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(theme.Brand).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

// EventList renders one row per recorded model call.
func EventList(events []store.LLMRequestEventRecord) string {
	t := newTable("ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		t.Row(
			strconv.Itoa(e.ID),
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			e.Model,
			strconv.Itoa(e.InputTokens),
			strconv.Itoa(e.OutputTokens),
			strconv.FormatInt(e.LatencyMs, 10),
			ok,
		)
	}
	return t.String()
}

// EventDetail renders a single call with its captured prompt and reply.
func EventDetail(e *store.LLMRequestEventRecord) string {
	var b strings.Builder
	field := func(name, value string) {
		fmt.Fprintf(&b, "%s %s\n", theme.Dimmed.Render(fmt.Sprintf("%-9s", name+":")), value)
	}

	field("ID", strconv.Itoa(e.ID))
	field("Time", e.Timestamp.Local().Format(timeLayout))
	field("Request", e.RequestID)
	field("Provider", e.Provider)
	field("Model", e.Model)
	field("Purpose", e.Purpose)
	field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
	field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
	if e.Success {
		field("Result", theme.Correct.Render("ok"))
	} else {
		field("Result", theme.Incorrect.Render("failed"))
		field("Error", e.ErrorMessage)
	}

	section := func(title, body string) {
		b.WriteString("\n")
		b.WriteString(theme.Selected.Render(title))
		b.WriteString("\n")
		if body == "" {
			body = theme.Hint.Render("(not captured)")
		}
		b.WriteString(body)
		b.WriteString("\n")
	}
	section("PROMPT", e.RequestBody)
	section("REPLY", e.ResponseBody)

	return b.String()
}

// UsageByPurpose renders token totals per purpose with a total row.
func UsageByPurpose(stats []store.PurposeUsage) string {
	t := newTable("Purpose", "Calls", "Input", "Output", "Total", "Avg ms")
	var calls, in, out int
	for _, s := range stats {
		t.Row(s.Purpose, strconv.Itoa(s.Calls), strconv.Itoa(s.InputTokens),
			strconv.Itoa(s.OutputTokens), strconv.Itoa(s.InputTokens+s.OutputTokens),
			strconv.FormatInt(s.AvgLatencyMs, 10))
		calls += s.Calls
		in += s.InputTokens
		out += s.OutputTokens
	}
	t.Row("TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(out), strconv.Itoa(in+out), "")
	return t.String()
}

// CostByModel renders estimated spend per model. Models without a known
// price show "?" and are listed under the table.
func CostByModel(usage []store.ModelUsage) string {
	t := newTable("Model", "Calls", "Input", "Output", "Cost")
	var total float64
	var unpriced []string
	for _, u := range usage {
		cost := "?"
		if c, ok := llm.EstimateCost(u.Model, llm.Usage{InputTokens: u.InputTokens, OutputTokens: u.OutputTokens}); ok {
			total += c
			cost = FormatCost(c)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		t.Row(u.Model, strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), cost)
	}

	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	t.Row(label, "", "", "", FormatCost(total))

	out := t.String()
	if len(unpriced) > 0 {
		out += "\n" + theme.Hint.Render("No price for: "+strings.Join(unpriced, ", "))
	}
	return out
}

// FormatCost prints USD with more precision for sub-cent amounts.
func FormatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
