package service

import (
	"math/rand"
	"sync"
	"time"
)

// TopicSelector 從固定主題目錄中抽籤。目錄由設定注入，隨機來源可替換，
// 測試時兩者都能換成可預期的版本
type TopicSelector struct {
	catalog []string

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTopicSelector 建立抽籤器；rnd 為 nil 時使用時間種子
func NewTopicSelector(catalog []string, rnd *rand.Rand) *TopicSelector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TopicSelector{catalog: catalog, rnd: rnd}
}

// Draw 獨立均勻抽出 n 個主題（可重複），保持抽籤順序。
// 呼叫端指定了明確主題時不應呼叫本方法
func (s *TopicSelector) Draw(n int) []string {
	topics := make([]string, 0, n)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		topics = append(topics, s.catalog[s.rnd.Intn(len(s.catalog))])
	}
	return topics
}
