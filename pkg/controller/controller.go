package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shouni/prompt-image-kit/pkg/domain"
	"github.com/shouni/prompt-image-kit/pkg/generator"
)

// 利用者にそのまま表示される短いエラーメッセージ
const msgEmptyPrompt = "prompt cannot be empty"

// SubmissionController はページ寿命の対話状態を所有し、入力の検証、
// 生成境界への要求発行、表示領域の切り替えを仲介します。
//
// 不変条件:
//   - 実行中 (Submitting) の要求は常に高々1つ。実行中の Submit 呼び出しは
//     キューされず、その場で無視されます。
//   - 表示領域（ローディング / 画像 / エラー）は状態から一意に導出されるため、
//     同時に複数が表示されることはありません。
//
// キャンセルはサポートしません。実行中の要求は完了か失敗まで走り切ります。
type SubmissionController struct {
	client generator.GenerationClient

	mu       sync.Mutex
	state    domain.InteractionState
	imageRef string
	errorMsg string
	seq      uint64 // Reset 跨ぎの結果適用を防ぐ世代カウンター
}

// NewSubmissionController は Idle 状態のコントローラーを初期化します。
func NewSubmissionController(client generator.GenerationClient) *SubmissionController {
	return &SubmissionController{
		client: client,
		state:  domain.StateIdle,
	}
}

// Submit は1回の投稿を処理し、処理後のビューを返します。
//
// 入力テキストはトリムされます。空の場合は境界へ到達せず EmptyPrompt の
// Failed に遷移します。実行中 (Submitting) の場合は何もせず現在のビューを
// 返します。これが多重リクエストに対する唯一のガードです。
func (c *SubmissionController) Submit(ctx context.Context, rawText string, settings map[string]string) domain.View {
	req, ok := domain.NewPromptRequest(rawText, settings)

	c.mu.Lock()
	if c.state == domain.StateSubmitting {
		// 実行中の再投稿は no-op（キューしない）
		view := c.viewLocked()
		c.mu.Unlock()
		slog.InfoContext(ctx, "実行中のため投稿を無視しました")
		return view
	}

	if !ok {
		c.transitionLocked(domain.StateFailed, "", msgEmptyPrompt)
		view := c.viewLocked()
		c.mu.Unlock()
		return view
	}

	c.transitionLocked(domain.StateSubmitting, "", "")
	seq := c.seq
	c.mu.Unlock()

	// 境界呼び出しはロックの外で行う。ページは入力に応答し続ける。
	result := c.client.Generate(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Reset が割り込んでいた場合、遅れて届いた結果は適用しない
	if c.seq != seq || c.state != domain.StateSubmitting {
		return c.viewLocked()
	}

	if result.OK() {
		c.transitionLocked(domain.StateDisplaying, result.ImageRef, "")
	} else {
		c.transitionLocked(domain.StateFailed, "", result.Message)
	}
	return c.viewLocked()
}

// Reset は状態を Idle に戻し、表示中の画像・エラーを消去します。
func (c *SubmissionController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transitionLocked(domain.StateIdle, "", "")
}

// View は現在の状態スナップショットを返します。
func (c *SubmissionController) View() domain.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *SubmissionController) transitionLocked(next domain.InteractionState, imageRef, errorMsg string) {
	slog.Debug("状態遷移", "from", c.state.String(), "to", next.String())
	c.state = next
	c.imageRef = imageRef
	c.errorMsg = errorMsg
	c.seq++
}

func (c *SubmissionController) viewLocked() domain.View {
	return domain.View{
		State:        c.state,
		ImageRef:     c.imageRef,
		ErrorMessage: c.errorMsg,
	}
}
