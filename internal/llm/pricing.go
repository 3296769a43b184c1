package llm

import (
	"sort"
	"strings"
)

// Price is USD per million tokens.
type Price struct {
	Input  float64
	Output float64
}

// Cost returns the USD cost of u at this price.
func (p Price) Cost(u Usage) float64 {
	return (float64(u.InputTokens)*p.Input + float64(u.OutputTokens)*p.Output) / 1_000_000
}

// prices is keyed by model family. Backends report dated or versioned IDs
// (claude-haiku-4-5-20251001, gemini-2.0-flash-001), so lookups match the
// longest family that prefixes the ID.
var prices = map[string]Price{
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4":   {3, 15},
	"claude-sonnet-4-5": {3, 15},
	"claude-opus-4":     {15, 75},
	"claude-opus-4-5":   {5, 25},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"o4-mini":      {1.1, 4.4},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}

// families lists price keys longest first.
var families = func() []string {
	keys := make([]string, 0, len(prices))
	for k := range prices {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return keys
}()

// LookupPrice finds the price for a model ID. OpenRouter style IDs
// ("openai/gpt-4o") are matched on the part after the vendor. Local and
// unknown models report false.
func LookupPrice(model string) (Price, bool) {
	if i := strings.LastIndexByte(model, '/'); i >= 0 {
		model = model[i+1:]
	}
	for _, family := range families {
		if model == family || strings.HasPrefix(model, family+"-") {
			return prices[family], true
		}
	}
	return Price{}, false
}

// EstimateCost prices u for model. ok is false when the model is unknown.
func EstimateCost(model string, u Usage) (cost float64, ok bool) {
	p, ok := LookupPrice(model)
	if !ok {
		return 0, false
	}
	return p.Cost(u), true
}
