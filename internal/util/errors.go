package util

import "errors"

var (
	// ErrAIRateLimited 生成服務回報額度用盡，呼叫端應提示使用者稍後重試
	ErrAIRateLimited = errors.New("ai service rate limited")
	// ErrGenerationFailed 生成服務的其他錯誤（含傳輸失敗）
	ErrGenerationFailed = errors.New("ai generation failed")
	// ErrMalformedGeneration 生成內容無法解析或不符合題目結構
	ErrMalformedGeneration = errors.New("malformed ai generation")
	// ErrStoreUnavailable 題庫無法連線
	ErrStoreUnavailable = errors.New("question store unavailable")
)
