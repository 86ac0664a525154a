package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/prompt-image-kit/pkg/domain"
	"github.com/shouni/prompt-image-kit/pkg/prompts"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// GeminiGenerator は Gemini を利用した ImageGenerator の実装です。
// プロンプト構築、通信、レスポンス解析までを担当します。
type GeminiGenerator struct {
	aiClient   gemini.GenerativeModel
	builder    prompts.PromptBuilder
	reader     remoteio.InputReader
	httpClient httpkit.ClientInterface
	model      string
}

// NewGeminiGenerator は依存関係を注入して GeminiGenerator を初期化します。
func NewGeminiGenerator(
	aiClient gemini.GenerativeModel,
	builder prompts.PromptBuilder,
	reader remoteio.InputReader,
	httpClient httpkit.ClientInterface,
	model string,
) (*GeminiGenerator, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if builder == nil {
		return nil, fmt.Errorf("builder is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// reader は nil を許容（gs:// 参照を扱わない構成）

	return &GeminiGenerator{
		aiClient:   aiClient,
		builder:    builder,
		reader:     reader,
		httpClient: httpClient,
		model:      model,
	}, nil
}

// GenerateImage はプロンプトを組み立てて Gemini へ送信し、画像バイナリを取り出します。
func (g *GeminiGenerator) GenerateImage(ctx context.Context, req domain.PromptRequest) (*ImageOutput, error) {
	prompt, aspectRatio := g.builder.Build(req)
	slog.InfoContext(ctx, "画像生成リクエストを送信します", "model", g.model, "aspect_ratio", aspectRatio)

	parts := []*genai.Part{{Text: prompt}}
	opts := gemini.GenerateOptions{
		AspectRatio: aspectRatio,
	}

	resp, err := g.aiClient.GenerateWithParts(ctx, g.model, parts, opts)
	if err != nil {
		return nil, fmt.Errorf("Gemini画像生成エラー: %w", err)
	}

	return g.parseToOutput(ctx, resp)
}

// parseToOutput は Gemini のレスポンスから画像バイナリを抽出します。
// InlineData を優先し、File API の URI しか返らなかった場合は取得しに行きます。
func (g *GeminiGenerator) parseToOutput(ctx context.Context, resp *gemini.Response) (*ImageOutput, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, fmt.Errorf("Geminiからの有効な応答がありませんでした")
	}

	// 最初の候補 (Candidate) のみを利用する
	candidate := resp.RawResponse.Candidates[0]

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &ImageOutput{Data: part.InlineData.Data, MimeType: part.InlineData.MIMEType}, nil
			}
			if part.FileData != nil && part.FileData.FileURI != "" {
				return g.fetchOutput(ctx, part.FileData.FileURI)
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("画像生成が異常終了しました (FinishReason: %s)", candidate.FinishReason)
	}

	return nil, fmt.Errorf("画像データが見つかりませんでした")
}

// fetchOutput は URI 参照で返された画像を取得して ImageOutput に変換します。
func (g *GeminiGenerator) fetchOutput(ctx context.Context, rawURI string) (*ImageOutput, error) {
	data, err := g.fetchImageData(ctx, rawURI)
	if err != nil {
		return nil, fmt.Errorf("生成画像の取得に失敗しました: %w", err)
	}
	mimeType := detectImageMIME(data)
	if mimeType == "" {
		return nil, fmt.Errorf("取得データが画像ではありませんでした")
	}
	return &ImageOutput{Data: data, MimeType: mimeType}, nil
}

func (g *GeminiGenerator) fetchImageData(ctx context.Context, rawURI string) ([]byte, error) {
	if strings.HasPrefix(rawURI, "gs://") {
		if g.reader == nil {
			return nil, fmt.Errorf("gs:// の参照を扱う reader が設定されていません")
		}
		rc, err := g.reader.Open(ctx, rawURI)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := isSafeURL(rawURI); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	return g.httpClient.FetchBytes(ctx, rawURI)
}
