package quiz

import "go.uber.org/zap"

const (
	// DefaultMaxAnswerLength is the longest answer accepted, in characters.
	DefaultMaxAnswerLength = 200

	// DefaultMinKeywordLength is the shortest token the grounding check
	// treats as a keyword.
	DefaultMinKeywordLength = 3
)

// DefaultBannedOptions are catch-all options that make a question trivially
// answerable or ambiguous.
var DefaultBannedOptions = []string{
	"all of the above",
	"none of the above",
	"both a and b",
	"all of these",
	"all of the options",
}

// Config controls the behavior of the Creator.
type Config struct {
	// Validators is the ordered list of validators to run on every parsed
	// candidate. They execute in order; the first failure stops the
	// pipeline. Cheap structural checks come first.
	Validators []Validator

	// Variant is the prompt variant used when CreateQuiz is not given one.
	Variant Variant

	// Logger receives pipeline diagnostics. Nil uses the global logger.
	Logger *zap.Logger
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&AnswerCountValidator{},
			&MembershipValidator{},
			&DistinctAnswersValidator{MaxLength: DefaultMaxAnswerLength},
			&CatchAllValidator{Banned: DefaultBannedOptions},
			&GroundingValidator{MinKeywordLength: DefaultMinKeywordLength},
		},
		Variant: VariantDefault,
	}
}
