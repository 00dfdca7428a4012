package service

import (
	"apcs_practice_backend/internal/model"
	"apcs_practice_backend/internal/util"
	"apcs_practice_backend/pkg/logger"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// 批次上限直接壓住單次生成呼叫的最壞延遲與成本：
// 生成服務按「次」計費與限流，不是按題數
const (
	MaxConceptBatch        = 10
	MaxImplementationBatch = 3
)

// clampCount 將請求題數夾在 [1, max]
func clampCount(count, max int) int {
	if count < 1 {
		return 1
	}
	if count > max {
		return max
	}
	return count
}

// GenerationService 串起主題抽籤、提示詞、生成服務與輸出清理/驗證
type GenerationService struct {
	AI            AIClient
	ConceptTopics *TopicSelector
	ProblemTopics *TopicSelector
}

func NewGenerationService(ai AIClient, conceptTopics, problemTopics *TopicSelector) *GenerationService {
	return &GenerationService{
		AI:            ai,
		ConceptTopics: conceptTopics,
		ProblemTopics: problemTopics,
	}
}

type hintPayload struct {
	Hint string `json:"hint"`
}

// GenerateHint 為卡關的考生產生解題提示
func (s *GenerationService) GenerateHint(ctx context.Context, req HintRequest) (string, error) {
	text, err := s.AI.Generate(ctx, BuildHintPrompt(req))
	if err != nil {
		return "", err
	}

	items, err := util.DecodeGenerated(text, false)
	if err != nil {
		logger.Log.Error("hint response unparseable", zap.String("raw", text), zap.Error(err))
		return "", err
	}

	var payload hintPayload
	if err := json.Unmarshal(items[0], &payload); err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrMalformedGeneration, err)
	}
	if payload.Hint == "" {
		return "", fmt.Errorf("%w: empty hint", util.ErrMalformedGeneration)
	}

	return payload.Hint, nil
}

// GenerateConceptQuestion 生成單一觀念題候選
func (s *GenerationService) GenerateConceptQuestion(ctx context.Context, topic string) (*model.GeneratedQuestion, error) {
	text, err := s.AI.Generate(ctx, BuildConceptQuestionPrompt(topic))
	if err != nil {
		return nil, err
	}

	questions, err := s.decodeConcepts(text, false)
	if err != nil {
		return nil, err
	}
	return &questions[0], nil
}

// GenerateImplementationProblem 生成單一實作題候選
func (s *GenerationService) GenerateImplementationProblem(ctx context.Context, topic string) (*model.GeneratedProblem, error) {
	text, err := s.AI.Generate(ctx, BuildImplementationProblemPrompt(topic))
	if err != nil {
		return nil, err
	}

	problems, err := s.decodeProblems(text, false)
	if err != nil {
		return nil, err
	}
	return &problems[0], nil
}

// GenerateConceptBatch 生成一批觀念題候選；topic 為空時逐題隨機抽主題
func (s *GenerationService) GenerateConceptBatch(ctx context.Context, topic string, count int) ([]model.GeneratedQuestion, error) {
	count = clampCount(count, MaxConceptBatch)

	var topics []string
	if topic == "" {
		topics = s.ConceptTopics.Draw(count)
	}

	text, err := s.AI.Generate(ctx, BuildConceptBatchPrompt(count, topic, topics))
	if err != nil {
		return nil, err
	}

	return s.decodeConcepts(text, true)
}

// GenerateImplementationBatch 生成一批實作題候選；topic 為空時逐題隨機抽主題
func (s *GenerationService) GenerateImplementationBatch(ctx context.Context, topic string, count int) ([]model.GeneratedProblem, error) {
	count = clampCount(count, MaxImplementationBatch)

	var topics []string
	if topic == "" {
		topics = s.ProblemTopics.Draw(count)
	}

	text, err := s.AI.Generate(ctx, BuildImplementationBatchPrompt(count, topic, topics))
	if err != nil {
		return nil, err
	}

	return s.decodeProblems(text, true)
}

func (s *GenerationService) decodeConcepts(text string, expectArray bool) ([]model.GeneratedQuestion, error) {
	items, err := util.DecodeGenerated(text, expectArray)
	if err != nil {
		logger.Log.Error("concept generation unparseable", zap.String("raw", text), zap.Error(err))
		return nil, err
	}

	questions := make([]model.GeneratedQuestion, 0, len(items))
	for _, item := range items {
		if err := validateGenerated(item, conceptSchema); err != nil {
			logger.Log.Error("concept generation rejected", zap.ByteString("item", item), zap.Error(err))
			return nil, err
		}
		var q model.GeneratedQuestion
		if err := json.Unmarshal(item, &q); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrMalformedGeneration, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (s *GenerationService) decodeProblems(text string, expectArray bool) ([]model.GeneratedProblem, error) {
	items, err := util.DecodeGenerated(text, expectArray)
	if err != nil {
		logger.Log.Error("problem generation unparseable", zap.String("raw", text), zap.Error(err))
		return nil, err
	}

	problems := make([]model.GeneratedProblem, 0, len(items))
	for _, item := range items {
		if err := validateGenerated(item, problemSchema); err != nil {
			logger.Log.Error("problem generation rejected", zap.ByteString("item", item), zap.Error(err))
			return nil, err
		}
		var p model.GeneratedProblem
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrMalformedGeneration, err)
		}
		problems = append(problems, p)
	}
	return problems, nil
}
