package controller

import (
	"apcs_practice_backend/internal/config"
	"apcs_practice_backend/internal/model"
	"apcs_practice_backend/internal/repository"
	"apcs_practice_backend/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.ConceptQuestion{}, &model.ImplementationQuestion{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestExamController(db *gorm.DB) *ExamController {
	svc := service.NewExamService(
		repository.NewConceptQuestionRepository(db),
		repository.NewImplementationQuestionRepository(db),
		nil,
		config.ExamConfig{ConceptCount: 30, ImplementationCount: 3, DurationSeconds: 9000},
	)
	return NewExamController(svc)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

type paperEnvelope struct {
	Code int             `json:"code"`
	Data model.ExamPaper `json:"data"`
}

func TestGetPaper_DifficultyFilterEndToEnd(t *testing.T) {
	db := setupTestDB(t)

	// 難度 2 共 5 題，其餘難度 50 題
	for i := 0; i < 5; i++ {
		d := 2
		db.Create(&model.ImplementationQuestion{
			Title: fmt.Sprintf("d2-%d", i), Description: "#", Difficulty: &d,
			TestCases: json.RawMessage(`[]`),
		})
	}
	for i := 0; i < 50; i++ {
		d := 1 + (i % 4)
		if d == 2 {
			d = 3
		}
		db.Create(&model.ImplementationQuestion{
			Title: fmt.Sprintf("other-%d", i), Description: "#", Difficulty: &d,
			TestCases: json.RawMessage(`[]`),
		})
	}

	c, w := setupTestContext()
	req, _ := http.NewRequest("GET", "/api/exam/paper?difficulty=2", nil)
	c.Request = req

	newTestExamController(db).GetPaper(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp paperEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Implementation, 3)
	for _, q := range resp.Data.Implementation {
		assert.Equal(t, 2, *q.Difficulty)
	}
	assert.Equal(t, 9000, resp.Data.Duration)
}

func TestGetPaper_NoDifficulty(t *testing.T) {
	db := setupTestDB(t)
	for i := 0; i < 40; i++ {
		db.Create(&model.ConceptQuestion{
			Title: fmt.Sprintf("c-%d", i), Content: "題目",
			Options: json.RawMessage(`["A","B","C","D"]`), AnswerIndex: 0,
		})
	}

	c, w := setupTestContext()
	req, _ := http.NewRequest("GET", "/api/exam/paper", nil)
	c.Request = req

	newTestExamController(db).GetPaper(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp paperEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Concept, 30)
}

type submissionEnvelope struct {
	Code int                    `json:"code"`
	Data model.SubmissionResult `json:"data"`
}

func TestSubmit_CorrectAnswerEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&model.ConceptQuestion{
		ID: 7, Title: "q7", Content: "題目",
		Options: json.RawMessage(`["A","B","C","D"]`), AnswerIndex: 2,
	})

	c, w := setupTestContext()
	body, _ := json.Marshal(map[string]interface{}{
		"conceptAnswers": map[string]int{"7": 2},
	})
	req, _ := http.NewRequest("POST", "/api/exam/submit", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	newTestExamController(db).Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp submissionEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Score)
	assert.Equal(t, 1, resp.Data.Total)
	if assert.Len(t, resp.Data.Details, 1) {
		assert.Equal(t, "7", resp.Data.Details[0].ID)
		assert.True(t, resp.Data.Details[0].Correct)
	}
}

func TestSubmit_InvalidBody(t *testing.T) {
	db := setupTestDB(t)

	c, w := setupTestContext()
	req, _ := http.NewRequest("POST", "/api/exam/submit", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	newTestExamController(db).Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
