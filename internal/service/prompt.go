package service

import (
	"fmt"
	"strings"
)

// 提示詞為純函式：相同輸入必得相同文字，生成品質調校才有回歸依據。
// 輸出語言固定為繁體中文（台灣），與前端顯示語言一致。

const conceptSchemaExample = `{
  "title": "Short Title",
  "content": "Question description... code dump if needed...",
  "code_snippet": "int func(int n) { ... }",
  "options": ["Option A", "Option B", "Option C", "Option D"],
  "answer_index": 0,
  "explanation": "Why A is correct..."
}`

const problemSchemaExample = `{
  "title": "Problem Title",
  "description": "# Problem Description\nWrite a program...\n\n## Input\n...\n\n## Output\n...",
  "test_cases": [
    { "input": "1 2", "output": "3", "is_sample": true },
    { "input": "10 20", "output": "30", "is_sample": false },
    { "input": "-5 5", "output": "0", "is_sample": false }
  ]
}`

// topicContext 組出題數與主題的敘述。topics 為空時代表呼叫端指定了單一主題，
// 否則依抽籤順序列成編號清單，要求模型依序逐題對應
func topicContext(kind string, count int, topic string, topics []string) string {
	if topic != "" {
		return fmt.Sprintf("Generate %d APCS (Advanced Placement Computer Science) %s about \"%s\".", count, kind, topic)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d APCS %s. Cover these topics in order:\n", count, kind)
	for i, t := range topics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildConceptQuestionPrompt 單一觀念題的提示詞
func BuildConceptQuestionPrompt(topic string) string {
	return fmt.Sprintf(`Generate 1 APCS (Advanced Placement Computer Science) concept question about "%s".
The content MUST be in Traditional Chinese (繁體中文).

Output STRICT JSON format matching this schema:
%s

Do not use markdown formatting in the output (no `+"```json"+`). Just raw JSON string.`, topic, conceptSchemaExample)
}

// BuildImplementationProblemPrompt 單一實作題的提示詞
func BuildImplementationProblemPrompt(topic string) string {
	return fmt.Sprintf(`Generate 1 APCS (Advanced Placement Computer Science) coding problem about "%s".
The content MUST be in Traditional Chinese (繁體中文).

Output STRICT JSON format matching this schema:
%s

Do not use markdown formatting in the output (no `+"```json"+`). Just raw JSON string.
Ensure the description is in Markdown format.`, topic, problemSchemaExample)
}

// BuildConceptBatchPrompt 批次觀念題的提示詞，輸出須為 JSON 陣列
func BuildConceptBatchPrompt(count int, topic string, topics []string) string {
	return fmt.Sprintf(`%s
The content MUST be in Traditional Chinese (繁體中文).

Output STRICT JSON format as a LIST (Array) of objects.
Each object must match this schema:
%s

Do not use markdown formatting in the output (no `+"```json"+`). Just raw JSON string.`,
		topicContext("concept questions", count, topic, topics), conceptSchemaExample)
}

// BuildImplementationBatchPrompt 批次實作題的提示詞，輸出須為 JSON 陣列
func BuildImplementationBatchPrompt(count int, topic string, topics []string) string {
	return fmt.Sprintf(`%s
The content MUST be in Traditional Chinese (繁體中文).

Output STRICT JSON format as a LIST (Array) of objects.
Each object must match this schema:
%s

Do not use markdown formatting in the output (no `+"```json"+`). Just raw JSON string.
Ensure the description is in Markdown format.`,
		topicContext("coding problems", count, topic, topics), problemSchemaExample)
}

// HintRequest 解題提示的輸入
type HintRequest struct {
	Code               string `json:"code"`
	Language           string `json:"language"`
	ProblemTitle       string `json:"problemTitle"`
	ProblemDescription string `json:"problemDescription"`
}

// BuildHintPrompt 解題提示的提示詞：只引導、不給完整解答
func BuildHintPrompt(req HintRequest) string {
	desc := req.ProblemDescription
	if runes := []rune(desc); len(runes) > 500 {
		desc = string(runes[:500]) + "... (truncated)"
	}

	return fmt.Sprintf(`You are a helpful Computer Science Tutor for a high school APCS exam.
The student is solving the problem: "%s".

Problem Description:
%s

Current Student Code (%s):
%s

Output must be in Traditional Chinese (Taiwan).
Task:
Provide a helpful HINT to guide the student in Traditional Chinese.
- Do NOT give the full solution.
- Do NOT write the code for them.
- Point out syntax errors, logic flaws, or edge cases they might have missed.
- Be concise (max 3 sentences).

Output JSON: { "hint": "Your hint here" }`, req.ProblemTitle, desc, req.Language, req.Code)
}
