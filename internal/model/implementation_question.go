package model

import "encoding/json"

// ImplementationQuestion 實作題（程式撰寫）
// swagger:model ImplementationQuestion
type ImplementationQuestion struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"size:255" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"` // Markdown 題敘
	Difficulty  *int            `gorm:"index" json:"difficulty"`               // 1-4，可為空
	TestCases   json.RawMessage `gorm:"type:json" json:"test_cases"`           // JSON: []TestCase
}

func (ImplementationQuestion) TableName() string {
	return "questions_implementation"
}

// TestCase 單筆測資；is_sample 為 true 者顯示給考生，其餘為評測用隱藏測資
type TestCase struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	IsSample bool   `json:"is_sample"`
}
