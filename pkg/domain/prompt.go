package domain

import "strings"

// PromptRequest は単一の画像生成要求です。
// Text はトリム済みの空でない文字列であることが不変条件です。
type PromptRequest struct {
	Text     string
	Settings map[string]string // オプション名 → 選択値（例: style, size）
}

// NewPromptRequest は生の入力テキストをトリムして要求を構築します。
// 空（空白のみ含む）の場合は ok=false を返し、境界層には到達させません。
func NewPromptRequest(rawText string, settings map[string]string) (PromptRequest, bool) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return PromptRequest{}, false
	}
	if settings == nil {
		settings = map[string]string{}
	}
	return PromptRequest{Text: text, Settings: settings}, true
}

// ErrorKind は失敗した生成要求の分類です。
type ErrorKind string

const (
	// ErrEmptyPrompt はローカルバリデーション失敗です。境界層には届きません。
	ErrEmptyPrompt ErrorKind = "empty_prompt"
	// ErrNetwork は通信レベルの失敗です。
	ErrNetwork ErrorKind = "network_error"
	// ErrService は生成サービス側の失敗（APIエラー、安全フィルター等）です。
	ErrService ErrorKind = "service_error"
	// ErrTimeout は要求の期限超過です。
	ErrTimeout ErrorKind = "timeout"
)

// GenerationResult は生成要求の結末を表すタグ付きバリアントです。
// Success か Failure のどちらか一方のみが成立します。
type GenerationResult struct {
	ImageRef string // 成功時のみ: 生成画像への不透明な参照（URI）
	Kind     ErrorKind
	Message  string
}

// Success は成功バリアントを構築します。
func Success(imageRef string) GenerationResult {
	return GenerationResult{ImageRef: imageRef}
}

// Failure は失敗バリアントを構築します。Message はそのまま利用者に表示されます。
func Failure(kind ErrorKind, message string) GenerationResult {
	return GenerationResult{Kind: kind, Message: message}
}

// OK は結果が成功バリアントかどうかを返します。
func (r GenerationResult) OK() bool {
	return r.Kind == ""
}
