package model

// AI 生成的候選題目。在另行入庫（不在本服務範圍）之前沒有編號。

// GeneratedQuestion 生成的觀念題候選
// swagger:model GeneratedQuestion
type GeneratedQuestion struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	CodeSnippet string   `json:"code_snippet"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation"`
}

// GeneratedProblem 生成的實作題候選
// swagger:model GeneratedProblem
type GeneratedProblem struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TestCases   []TestCase `json:"test_cases"`
}
