package controller

import (
	"apcs_practice_backend/internal/service"
	"apcs_practice_backend/internal/util"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubAIClient struct {
	response string
	err      error
}

func (s *stubAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestAIController(ai *stubAIClient) *AIController {
	svc := service.NewGenerationService(
		ai,
		service.NewTopicSelector([]string{"迴圈"}, nil),
		service.NewTopicSelector([]string{"陣列處理"}, nil),
	)
	return NewAIController(svc)
}

func TestHint_MissingCode(t *testing.T) {
	c, w := setupTestContext()
	body, _ := json.Marshal(map[string]string{"language": "c"})
	req, _ := http.NewRequest("POST", "/api/ai/hint", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	newTestAIController(&stubAIClient{}).Hint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Code is required")
}

func TestHint_Success(t *testing.T) {
	c, w := setupTestContext()
	body, _ := json.Marshal(map[string]string{"code": "int main(){}", "language": "c"})
	req, _ := http.NewRequest("POST", "/api/ai/hint", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	ai := &stubAIClient{response: `{"hint": "檢查迴圈的終止條件"}`}
	newTestAIController(ai).Hint(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "檢查迴圈的終止條件")
}

func TestGenerateQuestion_MissingTopic(t *testing.T) {
	c, w := setupTestContext()
	req, _ := http.NewRequest("POST", "/api/ai/generate-question", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	newTestAIController(&stubAIClient{}).GenerateQuestion(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Topic is required")
}

func TestGenerateQuestion_RateLimited(t *testing.T) {
	c, w := setupTestContext()
	body, _ := json.Marshal(map[string]string{"topic": "遞迴"})
	req, _ := http.NewRequest("POST", "/api/ai/generate-question", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	newTestAIController(&stubAIClient{err: util.ErrAIRateLimited}).GenerateQuestion(c)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "AI is busy")
}

func TestGenerateBatch_GenericFailureHidesDetail(t *testing.T) {
	c, w := setupTestContext()
	body, _ := json.Marshal(map[string]interface{}{"count": 3})
	req, _ := http.NewRequest("POST", "/api/ai/generate-batch", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	ai := &stubAIClient{response: "這不是 JSON"}
	newTestAIController(ai).GenerateBatch(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate batch questions.")
	assert.NotContains(t, w.Body.String(), "這不是 JSON")
}
