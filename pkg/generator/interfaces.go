package generator

import (
	"context"

	"github.com/shouni/prompt-image-kit/pkg/domain"
)

// GenerationClient は対話層（SubmissionController）が利用する生成境界です。
// Generate は1回の呼び出しにつき必ず1つの結果を返し、エラーを境界の外へ漏らしません。
// 呼び出し側は Failure バリアントの検査だけを行えばよい設計です。
type GenerationClient interface {
	Generate(ctx context.Context, req domain.PromptRequest) domain.GenerationResult
}

// ImageGenerator は画像バイナリを生成する内側の契約です。
// 通信・解析レベルの失敗は Go のエラーとして返し、分類は Client が行います。
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req domain.PromptRequest) (*ImageOutput, error)
}

// ImageStore は生成画像を配信用に保管し、不透明な参照を発行する契約です。
type ImageStore interface {
	Put(promptText string, data []byte, mimeType string) (imageRef string)
}

// ImageOutput は生成された画像バイナリとそのメタデータです。
type ImageOutput struct {
	Data     []byte
	MimeType string
}
