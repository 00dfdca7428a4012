package model

import "encoding/json"

// ConceptQuestion 觀念題（四選一）
// swagger:model ConceptQuestion
type ConceptQuestion struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"size:255" json:"title"`
	Content     string          `gorm:"type:text;not null" json:"content"`
	CodeSnippet string          `gorm:"type:text" json:"code_snippet"`
	Options     json.RawMessage `gorm:"type:json" json:"options"` // JSON: 長度固定為 4 的字串陣列
	AnswerIndex int             `gorm:"not null" json:"answer_index"`
	Explanation string          `gorm:"type:text" json:"explanation"`
}

func (ConceptQuestion) TableName() string {
	return "questions_concept"
}
