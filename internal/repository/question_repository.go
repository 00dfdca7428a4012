package repository

import (
	"apcs_practice_backend/internal/model"

	"gorm.io/gorm"
)

// randomOrder 依方言選擇隨機排序函式，測試用的 sqlite 只認 RANDOM()
func randomOrder(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "RANDOM()"
	}
	return "RAND()"
}

type ConceptQuestionRepository struct {
	DB *gorm.DB
}

func NewConceptQuestionRepository(db *gorm.DB) *ConceptQuestionRepository {
	return &ConceptQuestionRepository{DB: db}
}

// SampleRandom 隨機抽取至多 limit 題，不排除先前抽過的題目
func (r *ConceptQuestionRepository) SampleRandom(limit int) ([]model.ConceptQuestion, error) {
	var questions []model.ConceptQuestion
	err := r.DB.Order(randomOrder(r.DB)).Limit(limit).Find(&questions).Error
	return questions, err
}

// FindAnswersByIDs 批次查出題號對應的正解索引
func (r *ConceptQuestionRepository) FindAnswersByIDs(ids []uint) (map[uint]int, error) {
	if len(ids) == 0 {
		return map[uint]int{}, nil
	}

	var rows []model.ConceptQuestion
	err := r.DB.Select("id", "answer_index").Where("id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	answers := make(map[uint]int, len(rows))
	for _, row := range rows {
		answers[row.ID] = row.AnswerIndex
	}
	return answers, nil
}

type ImplementationQuestionRepository struct {
	DB *gorm.DB
}

func NewImplementationQuestionRepository(db *gorm.DB) *ImplementationQuestionRepository {
	return &ImplementationQuestionRepository{DB: db}
}

// SampleRandom 隨機抽取至多 limit 題；difficulty 非 nil 時先按難度過濾
func (r *ImplementationQuestionRepository) SampleRandom(limit int, difficulty *int) ([]model.ImplementationQuestion, error) {
	query := r.DB.Model(&model.ImplementationQuestion{})
	if difficulty != nil {
		query = query.Where("difficulty = ?", *difficulty)
	}

	var questions []model.ImplementationQuestion
	err := query.Order(randomOrder(r.DB)).Limit(limit).Find(&questions).Error
	return questions, err
}
