package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConceptQuestionPrompt_Deterministic(t *testing.T) {
	a := BuildConceptQuestionPrompt("遞迴")
	b := BuildConceptQuestionPrompt("遞迴")
	assert.Equal(t, a, b)
}

func TestBuildConceptQuestionPrompt_Content(t *testing.T) {
	prompt := BuildConceptQuestionPrompt("Pointers & Memory")

	assert.Contains(t, prompt, `about "Pointers & Memory"`)
	assert.Contains(t, prompt, "繁體中文")
	assert.Contains(t, prompt, `"answer_index"`)
	assert.Contains(t, prompt, `"options"`)
	assert.Contains(t, prompt, "no ```json")
}

func TestBuildConceptBatchPrompt_ExplicitTopic(t *testing.T) {
	prompt := BuildConceptBatchPrompt(5, "Sorting", nil)

	assert.Contains(t, prompt, `Generate 5 APCS (Advanced Placement Computer Science) concept questions about "Sorting".`)
	assert.Contains(t, prompt, "LIST (Array)")
	assert.NotContains(t, prompt, "Cover these topics in order")
}

func TestBuildConceptBatchPrompt_DrawnTopics(t *testing.T) {
	prompt := BuildConceptBatchPrompt(3, "", []string{"Loops", "Arrays", "Loops"})

	assert.Contains(t, prompt, "Cover these topics in order")
	assert.Contains(t, prompt, "1. Loops")
	assert.Contains(t, prompt, "2. Arrays")
	assert.Contains(t, prompt, "3. Loops")
}

func TestBuildImplementationBatchPrompt_Content(t *testing.T) {
	prompt := BuildImplementationBatchPrompt(2, "Recursion", nil)

	assert.Contains(t, prompt, "coding problems")
	assert.Contains(t, prompt, `"test_cases"`)
	assert.Contains(t, prompt, `"is_sample"`)
	assert.Contains(t, prompt, "Markdown format")
}

func TestBuildHintPrompt_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("甲", 600)
	prompt := BuildHintPrompt(HintRequest{
		Code:               "int main() {}",
		Language:           "c",
		ProblemTitle:       "合併區間",
		ProblemDescription: long,
	})

	assert.Contains(t, prompt, "... (truncated)")
	assert.NotContains(t, prompt, strings.Repeat("甲", 501))
	assert.Contains(t, prompt, strings.Repeat("甲", 500))
}

func TestBuildHintPrompt_Rules(t *testing.T) {
	prompt := BuildHintPrompt(HintRequest{Code: "x", Language: "c", ProblemTitle: "t"})

	assert.Contains(t, prompt, "Do NOT give the full solution.")
	assert.Contains(t, prompt, "max 3 sentences")
	assert.Contains(t, prompt, `Output JSON: { "hint": "Your hint here" }`)
}
