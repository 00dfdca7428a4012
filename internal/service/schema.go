package service

import (
	"apcs_practice_backend/internal/util"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// 生成內容在回傳前先過 JSON Schema 檢查，畸形但可解析的輸出
// 在這裡被確定性地擋下，而不是放行給前端。

const conceptQuestionSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string"},
		"content": {"type": "string", "minLength": 1},
		"code_snippet": {"type": "string"},
		"options": {"type": "array", "items": {"type": "string"}, "minItems": 4, "maxItems": 4},
		"answer_index": {"type": "integer", "minimum": 0, "maximum": 3},
		"explanation": {"type": "string"}
	},
	"required": ["title", "content", "options", "answer_index"]
}`

const implementationProblemSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string"},
		"description": {"type": "string", "minLength": 1},
		"test_cases": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"input": {"type": "string"},
					"output": {"type": "string"},
					"is_sample": {"type": "boolean"}
				},
				"required": ["input", "output"]
			}
		}
	},
	"required": ["title", "description", "test_cases"]
}`

var (
	conceptSchema = gojsonschema.NewStringLoader(conceptQuestionSchema)
	problemSchema = gojsonschema.NewStringLoader(implementationProblemSchema)
)

func validateGenerated(item json.RawMessage, schema gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(item))
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrMalformedGeneration, err)
	}

	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			reasons = append(reasons, e.String())
		}
		return fmt.Errorf("%w: %s", util.ErrMalformedGeneration, strings.Join(reasons, "; "))
	}

	return nil
}
