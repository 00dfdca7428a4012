package controller

import (
	"apcs_practice_backend/internal/service"
	"apcs_practice_backend/internal/util"
	"apcs_practice_backend/pkg/monitoring"
	"errors"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	Service *service.GenerationService
}

func NewAIController(svc *service.GenerationService) *AIController {
	return &AIController{Service: svc}
}

// respondGenerationError 把生成管線的失敗映射到對外狀態。
// 額度用盡回 429 讓使用者稍候重試；其餘一律回通用錯誤，原因只進日誌
func respondGenerationError(ctx *gin.Context, err error, message string) {
	if errors.Is(err, util.ErrAIRateLimited) {
		util.TooManyRequests(ctx, "AI is busy (Rate Limit). Please wait 1 minute.")
		return
	}
	util.Error(ctx, 500, message)
}

// recordGeneration 按模式與結果累計生成呼叫數
func recordGeneration(mode string, err error) {
	outcome := "success"
	switch {
	case errors.Is(err, util.ErrAIRateLimited):
		outcome = "rate_limited"
	case err != nil:
		outcome = "failed"
	}
	monitoring.GenerationCounter.WithLabelValues(mode, outcome).Inc()
}

// @Summary 解題提示
// @Description 依考生目前的程式碼產生引導式提示，不給完整解答
// @Tags AI 生成
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.HintRequest true "程式碼與題目資訊"
// @Success 200 {object} util.Response
// @Router /ai/hint [post]
func (c *AIController) Hint(ctx *gin.Context) {
	var req service.HintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Code == "" {
		util.BadRequest(ctx, "Code is required")
		return
	}

	hint, err := c.Service.GenerateHint(ctx.Request.Context(), req)
	recordGeneration("hint", err)
	if err != nil {
		respondGenerationError(ctx, err, "Failed to generate hint.")
		return
	}

	util.Success(ctx, gin.H{"hint": hint})
}

type generateSingleRequest struct {
	Topic string `json:"topic"`
}

// @Summary 生成單一觀念題
// @Tags AI 生成
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body generateSingleRequest true "出題主題"
// @Success 200 {object} util.Response{data=model.GeneratedQuestion}
// @Router /ai/generate-question [post]
func (c *AIController) GenerateQuestion(ctx *gin.Context) {
	var req generateSingleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Topic == "" {
		util.BadRequest(ctx, "Topic is required")
		return
	}

	question, err := c.Service.GenerateConceptQuestion(ctx.Request.Context(), req.Topic)
	recordGeneration("concept", err)
	if err != nil {
		respondGenerationError(ctx, err, "Failed to generate question.")
		return
	}

	util.Success(ctx, question)
}

// @Summary 生成單一實作題
// @Tags AI 生成
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body generateSingleRequest true "出題主題"
// @Success 200 {object} util.Response{data=model.GeneratedProblem}
// @Router /ai/generate-implementation [post]
func (c *AIController) GenerateImplementation(ctx *gin.Context) {
	var req generateSingleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Topic == "" {
		util.BadRequest(ctx, "Topic is required")
		return
	}

	problem, err := c.Service.GenerateImplementationProblem(ctx.Request.Context(), req.Topic)
	recordGeneration("implementation", err)
	if err != nil {
		respondGenerationError(ctx, err, "Failed to generate problem.")
		return
	}

	util.Success(ctx, problem)
}

type generateBatchRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// @Summary 批次生成觀念題
// @Description 一次生成多題觀念題，題數夾在 1-10；未指定主題時逐題隨機抽
// @Tags AI 生成
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body generateBatchRequest true "主題（可省略）與題數"
// @Success 200 {object} util.Response{data=[]model.GeneratedQuestion}
// @Router /ai/generate-batch [post]
func (c *AIController) GenerateBatch(ctx *gin.Context) {
	var req generateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.Service.GenerateConceptBatch(ctx.Request.Context(), req.Topic, req.Count)
	recordGeneration("concept_batch", err)
	if err != nil {
		respondGenerationError(ctx, err, "Failed to generate batch questions.")
		return
	}

	util.Success(ctx, questions)
}

// @Summary 批次生成實作題
// @Description 一次生成多題實作題，題數夾在 1-3（生成成本高）
// @Tags AI 生成
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body generateBatchRequest true "主題（可省略）與題數"
// @Success 200 {object} util.Response{data=[]model.GeneratedProblem}
// @Router /ai/generate-implementation-batch [post]
func (c *AIController) GenerateImplementationBatch(ctx *gin.Context) {
	var req generateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problems, err := c.Service.GenerateImplementationBatch(ctx.Request.Context(), req.Topic, req.Count)
	recordGeneration("implementation_batch", err)
	if err != nil {
		respondGenerationError(ctx, err, "Failed to generate problems.")
		return
	}

	util.Success(ctx, problems)
}
