package service

import (
	"apcs_practice_backend/internal/config"
	"apcs_practice_backend/internal/util"
	"apcs_practice_backend/pkg/logger"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AIClient 文字生成服務的抽象介面，測試時以假實作替換
type AIClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AIService 透過 OpenAI 相容的 chat completions 介面呼叫生成服務。
// 會以 response_format 要求 JSON 輸出，但這只是盡力而為的提示，
// 下游仍需容忍圍欄或畸形輸出。
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
	}
}

// UpdateConfig 供設定熱重載換置金鑰或模型，進行中的請求不受影響
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []aiChatMessage `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Generate(ctx context.Context, prompt string) (string, error) {
	callID := uuid.New().String()
	start := time.Now()

	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()

	reqBody := chatCompletionRequest{
		Model: cfg.Model,
		Messages: []aiChatMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrGenerationFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Log.Error("AI request failed", zap.String("call_id", callID), zap.Error(err))
		return "", fmt.Errorf("%w: %v", util.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 額度用盡要與其他錯誤區分，讓呼叫端回覆可重試的狀態
	if resp.StatusCode == http.StatusTooManyRequests {
		logger.Log.Warn("AI rate limited", zap.String("call_id", callID))
		return "", util.ErrAIRateLimited
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("AI API error",
			zap.String("call_id", callID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", fmt.Errorf("%w: status %d", util.ErrGenerationFailed, resp.StatusCode)
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrGenerationFailed, err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("%w: %s", util.ErrGenerationFailed, result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", util.ErrGenerationFailed)
	}

	logger.Log.Debug("AI call completed",
		zap.String("call_id", callID),
		zap.Duration("elapsed", time.Since(start)))

	return result.Choices[0].Message.Content, nil
}
