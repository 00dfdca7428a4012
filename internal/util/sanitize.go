package util

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// 生成模型偶爾無視指示，仍用 ```json ... ``` 包住輸出
var fenceRe = regexp.MustCompile("```[a-zA-Z]*")

// StripCodeFences 移除文字中所有圍欄標記（含語言標籤）並修剪前後空白
func StripCodeFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}

// DecodeGenerated 清理生成文字並解析為 JSON。
// expectArray 為 true 時，單一物件會被包成單元素陣列（模型在 count=1 時
// 常忽略陣列指示）；為 false 時，單元素陣列會被拆開取其唯一元素。
func DecodeGenerated(text string, expectArray bool) ([]json.RawMessage, error) {
	cleaned := StripCodeFences(text)

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGeneration, err)
	}

	trimmed := strings.TrimSpace(string(raw))
	isArray := strings.HasPrefix(trimmed, "[")

	if isArray {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedGeneration, err)
		}
		if !expectArray && len(items) != 1 {
			return nil, fmt.Errorf("%w: expected a single object, got an array of %d", ErrMalformedGeneration, len(items))
		}
		return items, nil
	}

	return []json.RawMessage{raw}, nil
}
