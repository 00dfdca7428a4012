package util

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences_WithLanguageTag(t *testing.T) {
	text := "```json\n{\"title\": \"t\"}\n```"
	assert.Equal(t, "{\"title\": \"t\"}", StripCodeFences(text))
}

func TestStripCodeFences_WithoutLanguageTag(t *testing.T) {
	text := "```\n[1, 2, 3]\n```"
	assert.Equal(t, "[1, 2, 3]", StripCodeFences(text))
}

func TestStripCodeFences_NoFences(t *testing.T) {
	assert.Equal(t, "{\"a\": 1}", StripCodeFences("  {\"a\": 1}  "))
}

func TestDecodeGenerated_FencedRoundTrip(t *testing.T) {
	// 圍欄包裝後解析的結果必須與直接解析相同
	plain := `{"title":"迴圈","answer_index":2}`
	fenced := "```json\n" + plain + "\n```"

	fromFenced, err := DecodeGenerated(fenced, false)
	assert.NoError(t, err)

	fromPlain, err := DecodeGenerated(plain, false)
	assert.NoError(t, err)

	assert.JSONEq(t, string(fromPlain[0]), string(fromFenced[0]))
}

func TestDecodeGenerated_ObjectCoercedToArray(t *testing.T) {
	items, err := DecodeGenerated(`{"title":"單一物件"}`, true)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.JSONEq(t, `{"title":"單一物件"}`, string(items[0]))
}

func TestDecodeGenerated_ArrayPassedThrough(t *testing.T) {
	items, err := DecodeGenerated(`[{"a":1},{"a":2}]`, true)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDecodeGenerated_SingleModeUnwrapsOneElementArray(t *testing.T) {
	items, err := DecodeGenerated(`[{"hint":"先檢查邊界"}]`, false)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.JSONEq(t, `{"hint":"先檢查邊界"}`, string(items[0]))
}

func TestDecodeGenerated_SingleModeRejectsLongerArray(t *testing.T) {
	_, err := DecodeGenerated(`[{"a":1},{"a":2}]`, false)
	assert.True(t, errors.Is(err, ErrMalformedGeneration))
}

func TestDecodeGenerated_MalformedJSON(t *testing.T) {
	_, err := DecodeGenerated("not json at all", true)
	assert.True(t, errors.Is(err, ErrMalformedGeneration))
}

func TestDecodeGenerated_FencesInsideBatch(t *testing.T) {
	text := "```json\n[{\"title\":\"A\"},{\"title\":\"B\"}]\n```"
	items, err := DecodeGenerated(text, true)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	var first map[string]string
	assert.NoError(t, json.Unmarshal(items[0], &first))
	assert.Equal(t, "A", first["title"])
}
