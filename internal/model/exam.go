package model

// ExamPaper 一次組卷的結果。不落地：產生後即交給呼叫端，服務不保存
// swagger:model ExamPaper
type ExamPaper struct {
	ID             int64                    `json:"id"`       // 組卷當下的 epoch 毫秒
	Duration       int                      `json:"duration"` // 總時長（秒）
	Concept        []ConceptQuestion        `json:"concept"`
	Implementation []ImplementationQuestion `json:"implementation"`
}

// SubmissionResult 觀念題批改結果
// swagger:model SubmissionResult
type SubmissionResult struct {
	Score   int           `json:"score"`
	Total   int           `json:"total"`
	Details []GradeDetail `json:"details"`
}

// GradeDetail 單題判定。答對時不回傳正解索引；題號不存在時標記 unknown
type GradeDetail struct {
	ID           string `json:"id"`
	Correct      bool   `json:"correct"`
	CorrectIndex *int   `json:"correctIndex,omitempty"`
	Unknown      bool   `json:"unknown,omitempty"`
}
