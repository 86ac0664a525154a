package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/prompt-image-kit/pkg/domain"
)

// 利用者にそのまま表示される短いエラーメッセージ
const (
	msgTimeout = "request timed out"
	msgNetwork = "network error, please try again"
	msgService = "image generation failed, please try again"
)

// Client は対話層から見た生成境界の実装です。ImageGenerator の結果を保管庫へ渡し、
// あらゆる失敗を ErrorKind に分類した GenerationResult として返します。
type Client struct {
	generator ImageGenerator
	store     ImageStore
	timeout   time.Duration
}

// NewClient は依存関係を注入して Client を初期化します。
func NewClient(generator ImageGenerator, store ImageStore, timeout time.Duration) (*Client, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{generator: generator, store: store, timeout: timeout}, nil
}

// Generate は1回の生成要求を実行します。内部でリトライは行いません。
// エラーを返さず、必ず Success か Failure のどちらかに解決します。
func (c *Client) Generate(ctx context.Context, req domain.PromptRequest) domain.GenerationResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.generator.GenerateImage(ctx, req)
	if err != nil {
		kind, message := classify(err)
		slog.WarnContext(ctx, "画像生成に失敗しました", "kind", string(kind), "error", err)
		return domain.Failure(kind, message)
	}

	imageRef := c.store.Put(req.Text, out.Data, out.MimeType)
	slog.InfoContext(ctx, "画像生成が完了しました", "image_ref", imageRef, "bytes", len(out.Data))
	return domain.Success(imageRef)
}
