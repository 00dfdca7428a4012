package controller

import (
	"apcs_practice_backend/internal/service"
	"apcs_practice_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

// @Summary 產生模擬考卷
// @Description 隨機抽 30 題觀念題與 3 題實作題，可依難度過濾實作題
// @Tags 模擬考
// @Produce json
// @Security ApiKeyAuth
// @Param difficulty query int false "實作題難度 (1-4)"
// @Success 200 {object} util.Response{data=model.ExamPaper}
// @Router /exam/paper [get]
func (c *ExamController) GetPaper(ctx *gin.Context) {
	var difficulty *int
	if str := ctx.Query("difficulty"); str != "" {
		if d, err := strconv.Atoi(str); err == nil {
			difficulty = &d
		}
	}

	paper, err := c.Service.AssemblePaper(difficulty)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, paper)
}

type submitExamRequest struct {
	ConceptAnswers map[string]int `json:"conceptAnswers"`
}

// @Summary 繳交模擬考
// @Description 批改觀念題作答並回傳得分與逐題判定
// @Tags 模擬考
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body submitExamRequest true "作答內容 {conceptAnswers: {題號: 選項索引}}"
// @Success 200 {object} util.Response{data=model.SubmissionResult}
// @Router /exam/submit [post]
func (c *ExamController) Submit(ctx *gin.Context) {
	var req submitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Grade(ctx.Request.Context(), req.ConceptAnswers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
