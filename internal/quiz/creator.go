package quiz

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/checkpoint/internal/llm"
	"github.com/abhisek/checkpoint/internal/logger"
)

// Purpose labels model calls made for quiz generation in the LLM event log.
const Purpose = "quiz-gen"

// Model is the text-in/text-out capability the Creator depends on.
type Model interface {
	// Complete sends prompt to the model and returns its raw text reply.
	Complete(ctx context.Context, prompt string) (string, error)
}

// JSONModel is implemented by models that can ask their backend for JSON
// output directly. The structured-output variant uses it when available.
type JSONModel interface {
	CompleteJSON(ctx context.Context, prompt string, schema *llm.Schema) (string, error)
}

// ModelFunc adapts a function to the Model interface.
type ModelFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f ModelFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Creator turns source text into a validated Quiz using a Model.
// It holds no per-call state and is safe for concurrent use.
type Creator struct {
	model  Model
	config Config
}

// New creates a Creator with the given model and config. A nil
// cfg.Validators selects the default chain.
func New(model Model, cfg Config) *Creator {
	if cfg.Validators == nil {
		cfg.Validators = DefaultConfig().Validators
	}
	return &Creator{model: model, config: cfg}
}

// invariants hold for every Quiz whatever chain the Config carries.
var invariants = []Validator{
	&AnswerCountValidator{},
	&MembershipValidator{},
	&DistinctAnswersValidator{MaxLength: DefaultMaxAnswerLength},
}

// CreateOption customizes a single CreateQuiz call.
type CreateOption func(*createOptions)

type createOptions struct {
	variant Variant
}

// WithVariant selects the prompt variant for one call.
func WithVariant(v Variant) CreateOption {
	return func(o *createOptions) { o.variant = v }
}

// CreateQuiz builds a prompt, makes exactly one model call, parses the reply
// and runs the validator chain. Failures are never retried here; callers
// that want another attempt choose a different variant themselves.
func (c *Creator) CreateQuiz(ctx context.Context, content string, opts ...CreateOption) (*Quiz, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	o := createOptions{variant: c.config.Variant}
	for _, opt := range opts {
		opt(&o)
	}
	if o.variant == "" {
		o.variant = VariantDefault
	}

	prompt, err := BuildPrompt(content, o.variant)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	ctx = llm.WithPurpose(ctx, Purpose)
	ctx = llm.WithRequestID(ctx, requestID)
	log := c.logger().With(
		zap.String("request_id", requestID),
		zap.String("variant", string(o.variant)),
	)
	log.Debug("quiz prompt built", zap.Int("prompt_bytes", len(prompt)))

	resp, err := c.complete(ctx, prompt, o.variant)
	if err != nil {
		log.Warn("model call failed", zap.Error(err))
		return nil, &UpstreamError{Variant: o.variant, Err: err}
	}

	res := Parse(resp)
	if res.StructuredErr != nil {
		log.Debug("structured decode discarded", zap.Error(res.StructuredErr))
	}
	if res.Source == SourceFailed {
		log.Warn("quiz response rejected", zap.Error(res.Err))
		return nil, res.Err
	}

	cand := res.Candidate
	verr := runValidators(c.config.Validators, &cand, content)
	if verr == nil {
		verr = runValidators(invariants, &cand, content)
	}
	if verr != nil {
		log.Warn("quiz candidate rejected",
			zap.String("validator", verr.Validator),
			zap.Stringer("kind", verr.Kind),
			zap.String("reason", verr.Message),
		)
		return nil, verr
	}

	answers := make([]string, len(cand.Answers))
	copy(answers, cand.Answers)
	q := &Quiz{
		content:       content,
		question:      cand.Question,
		answers:       answers,
		correctAnswer: cand.CorrectAnswer,
	}

	log.Info("quiz created", zap.Stringer("source", res.Source))
	return q, nil
}

func (c *Creator) complete(ctx context.Context, prompt string, v Variant) (string, error) {
	if jm, ok := c.model.(JSONModel); ok && v == VariantStructured {
		return jm.CompleteJSON(ctx, prompt, QuizSchema)
	}
	return c.model.Complete(ctx, prompt)
}

func (c *Creator) logger() *zap.Logger {
	if c.config.Logger == nil {
		return logger.Get()
	}
	return c.config.Logger
}
