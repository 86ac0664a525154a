package controller

import (
	"context"
	"sync/atomic"

	"github.com/shouni/prompt-image-kit/pkg/domain"
)

// mockClient は GenerationClient のテスト用モックなのだ。
type mockClient struct {
	calls        atomic.Int64
	generateFunc func(ctx context.Context, req domain.PromptRequest) domain.GenerationResult

	// release を設定すると、受信するまで Generate をブロックできる（実行中状態の再現用）
	started chan struct{}
	release chan domain.GenerationResult
}

func (m *mockClient) Generate(ctx context.Context, req domain.PromptRequest) domain.GenerationResult {
	m.calls.Add(1)
	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.release != nil {
		return <-m.release
	}
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return domain.Success("/images/default.png")
}
