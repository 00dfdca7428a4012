package service

import (
	"apcs_practice_backend/internal/config"
	"apcs_practice_backend/internal/model"
	"apcs_practice_backend/internal/repository"
	"apcs_practice_backend/internal/util"
	"apcs_practice_backend/pkg/logger"
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const answerCacheTTL = time.Hour

type ExamService struct {
	Concepts *repository.ConceptQuestionRepository
	Problems *repository.ImplementationQuestionRepository
	RDB      *redis.Client // 可為 nil，僅作為正解索引的快取
	Exam     config.ExamConfig
}

func NewExamService(concepts *repository.ConceptQuestionRepository, problems *repository.ImplementationQuestionRepository, rdb *redis.Client, exam config.ExamConfig) *ExamService {
	return &ExamService{
		Concepts: concepts,
		Problems: problems,
		RDB:      rdb,
		Exam:     exam,
	}
}

// AssemblePaper 組出一份模擬考卷：隨機 30 題觀念題加 3 題實作題。
// difficulty 在 1-4 之間時只抽該難度的實作題，否則不過濾。
// 題庫不足額時照樣回傳抽到的題目，不補題也不報錯
func (s *ExamService) AssemblePaper(difficulty *int) (*model.ExamPaper, error) {
	if difficulty != nil && (*difficulty < 1 || *difficulty > 4) {
		difficulty = nil
	}

	concepts, err := s.Concepts.SampleRandom(s.Exam.ConceptCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}

	problems, err := s.Problems.SampleRandom(s.Exam.ImplementationCount, difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}

	if len(concepts) < s.Exam.ConceptCount || len(problems) < s.Exam.ImplementationCount {
		logger.Log.Debug("exam paper under-filled",
			zap.Int("concepts", len(concepts)),
			zap.Int("problems", len(problems)))
	}

	return &model.ExamPaper{
		ID:             time.Now().UnixMilli(),
		Duration:       s.Exam.DurationSeconds,
		Concept:        concepts,
		Implementation: problems,
	}, nil
}

// Grade 批改觀念題作答。答案鍵為題號字串、值為選項索引。
// 空作答不是錯誤；題號不存在時記為 unknown 判定而不是硬錯誤
func (s *ExamService) Grade(ctx context.Context, conceptAnswers map[string]int) (*model.SubmissionResult, error) {
	result := &model.SubmissionResult{Details: []model.GradeDetail{}}
	if len(conceptAnswers) == 0 {
		return result, nil
	}

	// map 走訪順序不定，先照題號排穩，批改結果才可重現
	keys := make([]string, 0, len(conceptAnswers))
	for k := range conceptAnswers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.ParseUint(keys[i], 10, 64)
		b, berr := strconv.ParseUint(keys[j], 10, 64)
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return keys[i] < keys[j]
	})

	ids := make([]uint, 0, len(keys))
	for _, k := range keys {
		if id, err := strconv.ParseUint(k, 10, 64); err == nil {
			ids = append(ids, uint(id))
		}
	}

	answers, err := s.lookupAnswers(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, k := range keys {
		result.Total++

		id, parseErr := strconv.ParseUint(k, 10, 64)
		if parseErr != nil {
			result.Details = append(result.Details, model.GradeDetail{ID: k, Unknown: true})
			continue
		}

		correctIndex, known := answers[uint(id)]
		if !known {
			result.Details = append(result.Details, model.GradeDetail{ID: k, Unknown: true})
			continue
		}

		if conceptAnswers[k] == correctIndex {
			result.Score++
			result.Details = append(result.Details, model.GradeDetail{ID: k, Correct: true})
		} else {
			idx := correctIndex
			result.Details = append(result.Details, model.GradeDetail{ID: k, Correct: false, CorrectIndex: &idx})
		}
	}

	return result, nil
}

func answerCacheKey(id uint) string {
	return "apcs:answer:" + strconv.FormatUint(uint64(id), 10)
}

// lookupAnswers 先查 Redis 快取，缺的再回題庫補，並回填快取
func (s *ExamService) lookupAnswers(ctx context.Context, ids []uint) (map[uint]int, error) {
	answers := make(map[uint]int, len(ids))
	missing := ids

	if s.RDB != nil && len(ids) > 0 {
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = answerCacheKey(id)
		}

		if vals, err := s.RDB.MGet(ctx, keys...).Result(); err == nil {
			missing = make([]uint, 0, len(ids))
			for i, v := range vals {
				str, ok := v.(string)
				if !ok {
					missing = append(missing, ids[i])
					continue
				}
				idx, convErr := strconv.Atoi(str)
				if convErr != nil {
					missing = append(missing, ids[i])
					continue
				}
				answers[ids[i]] = idx
			}
		}
	}

	if len(missing) > 0 {
		fromDB, err := s.Concepts.FindAnswersByIDs(missing)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
		}
		for id, idx := range fromDB {
			answers[id] = idx
			if s.RDB != nil {
				s.RDB.Set(ctx, answerCacheKey(id), strconv.Itoa(idx), answerCacheTTL)
			}
		}
	}

	return answers, nil
}
