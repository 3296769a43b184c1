package quiz

import "fmt"

const templateFormat = `Question: <question>
Answers: <answer1>, <answer2>, <answer3>, <answer4>
Correct Answer: <correctAnswer>`

const defaultPrompt = `Generate a multiple-choice quiz question based on the following content:

%s

Provide one question and four possible answers, indicating which one is correct. Format the response as follows:
` + templateFormat

const structuredPrompt = `Generate one multiple-choice comprehension question about the following content:

%s

Return only JSON. The response must be a single object with exactly these fields:
{"question": "<question>", "answers": ["<answer1>", "<answer2>", "<answer3>", "<answer4>"], "correctAnswer": "<correctAnswer>"}

Rules:
- "answers" must contain exactly 4 distinct strings.
- "correctAnswer" must be identical to one element of "answers".
- No prose, no markdown, no code fences. Nothing before or after the object.`

const constrainedPrompt = `Generate one multiple-choice comprehension question based on the following content:

%s

Rules:
- Provide EXACTLY FOUR answers. They must be mutually exclusive, concise and plausible.
- The correct answer MUST be copied verbatim from one of the four answers.
- Do not put commas inside an answer.
- Do not use catch-all options such as "All of the above" or "None of the above".
- Output exactly the three lines below and nothing else. No introduction, notes or blank lines.

` + templateFormat

// BuildPrompt returns the instruction sent to the model for the given
// content and prompt variant.
func BuildPrompt(content string, variant Variant) (string, error) {
	switch variant {
	case VariantDefault, "":
		return fmt.Sprintf(defaultPrompt, content), nil
	case VariantStructured:
		return fmt.Sprintf(structuredPrompt, content), nil
	case VariantConstrained:
		return fmt.Sprintf(constrainedPrompt, content), nil
	}
	return "", fmt.Errorf("unknown prompt variant %q", variant)
}
