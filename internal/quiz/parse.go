package quiz

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/checkpoint/internal/llm"
)

const (
	questionPrefix      = "Question:"
	answersPrefix       = "Answers:"
	correctAnswerPrefix = "Correct Answer:"
)

// Source tells which extraction stage produced a candidate.
type Source int

const (
	SourceFailed Source = iota
	SourceStructured
	SourceTemplated
)

func (s Source) String() string {
	switch s {
	case SourceStructured:
		return "structured"
	case SourceTemplated:
		return "templated"
	default:
		return "failed"
	}
}

// ParseResult is the outcome of Parse.
type ParseResult struct {
	Source    Source
	Candidate Candidate

	// StructuredErr explains why a response that looked structured was
	// discarded in favor of the line-template stage. Nil when the
	// structured stage was skipped or succeeded.
	StructuredErr error

	// Err is set when Source is SourceFailed.
	Err *ParseError
}

// Parse extracts a candidate from a raw model response. A response that
// looks like a JSON object is decoded first; if that yields no usable
// candidate the line-template format is tried. Answer count and
// correct-answer membership of templated candidates are left to the
// validator chain.
func Parse(response string) ParseResult {
	trimmed := strings.TrimSpace(response)

	var res ParseResult
	if body, ok := structuredBody(trimmed); ok {
		c, err := decodeStructured(body)
		if err == nil {
			return ParseResult{Source: SourceStructured, Candidate: c}
		}
		res.StructuredErr = err
	}

	c, perr := decodeTemplated(trimmed)
	if perr != nil {
		res.Source = SourceFailed
		res.Err = perr
		return res
	}
	res.Source = SourceTemplated
	res.Candidate = c
	return res
}

// structuredBody returns the JSON object text when s looks structured.
func structuredBody(s string) (string, bool) {
	s = stripCodeFences(s)
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return s, true
	}
	if !strings.Contains(s, `"answers"`) {
		return "", false
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// stripCodeFences removes a surrounding markdown code fence, if any.
func stripCodeFences(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

// structuredOutput is the raw structured response before validation.
type structuredOutput struct {
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer"`
}

func decodeStructured(body string) (Candidate, error) {
	if err := llm.ValidateJSON(QuizSchema, []byte(body)); err != nil {
		return Candidate{}, err
	}

	var raw structuredOutput
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return Candidate{}, fmt.Errorf("decode structured response: %w", err)
	}

	found := false
	for _, a := range raw.Answers {
		if a == raw.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return Candidate{}, fmt.Errorf("correctAnswer %q is not one of the answers", raw.CorrectAnswer)
	}

	return Candidate{
		Question:      raw.Question,
		Answers:       raw.Answers,
		CorrectAnswer: raw.CorrectAnswer,
	}, nil
}

func decodeTemplated(s string) (Candidate, *ParseError) {
	var questionLine, answersLine, correctLine string
	var haveQuestion, haveAnswers, haveCorrect bool

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case !haveQuestion && strings.HasPrefix(line, questionPrefix):
			questionLine, haveQuestion = line, true
		case !haveAnswers && strings.HasPrefix(line, answersPrefix):
			answersLine, haveAnswers = line, true
		case !haveCorrect && strings.HasPrefix(line, correctAnswerPrefix):
			correctLine, haveCorrect = line, true
		}
	}

	var missing []string
	if !haveQuestion {
		missing = append(missing, questionPrefix)
	}
	if !haveAnswers {
		missing = append(missing, answersPrefix)
	}
	if !haveCorrect {
		missing = append(missing, correctAnswerPrefix)
	}
	if len(missing) > 0 {
		return Candidate{}, &ParseError{
			Reason: fmt.Sprintf("missing %s line", strings.Join(missing, ", ")),
			Raw:    s,
		}
	}

	parts := strings.Split(strings.TrimPrefix(answersLine, answersPrefix), ",")
	answers := make([]string, len(parts))
	for i, p := range parts {
		answers[i] = strings.TrimSpace(p)
	}

	return Candidate{
		Question:      strings.TrimSpace(strings.TrimPrefix(questionLine, questionPrefix)),
		Answers:       answers,
		CorrectAnswer: strings.TrimSpace(strings.TrimPrefix(correctLine, correctAnswerPrefix)),
	}, nil
}
