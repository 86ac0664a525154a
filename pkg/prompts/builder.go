package prompts

import (
	"strings"

	"github.com/shouni/prompt-image-kit/pkg/config"
	"github.com/shouni/prompt-image-kit/pkg/domain"
)

// PromptBuilder は、ユーザー入力と設定値から最終プロンプトを構築する契約です。
type PromptBuilder interface {
	// Build は、最終プロンプト文字列と生成時のアスペクト比を決定します。
	Build(req domain.PromptRequest) (prompt string, aspectRatio string)
	// Normalize は、列挙定義にない選択値を各オプションの既定値へ丸めます。
	Normalize(settings map[string]string) map[string]string
}

// styleSuffixes はスタイル選択値ごとにプロンプトへ注入する修飾語です。
var styleSuffixes = map[string][]string{
	"realistic": {
		"highly detailed",
		"photorealistic",
		"8k resolution",
		"professional photography",
		"natural lighting",
	},
	"anime":      {"anime style", "clean line art", "vibrant colors"},
	"watercolor": {"watercolor painting", "soft brush strokes", "paper texture"},
	"pixel-art":  {"pixel art", "16-bit style", "limited palette"},
}

// sizeRatios はサイズ選択値と Gemini のアスペクト比指定の対応です。
var sizeRatios = map[string]string{
	"square":    "1:1",
	"portrait":  "3:4",
	"landscape": "16:9",
}

// Builder は設定の列挙定義に基づく PromptBuilder の実装です。
type Builder struct {
	cfg config.Config
}

// NewBuilder は Builder を初期化します。
func NewBuilder(cfg config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build は選択されたスタイルの修飾語をプロンプト末尾へ連結し、
// サイズ選択値からアスペクト比を決定します。
func (b *Builder) Build(req domain.PromptRequest) (string, string) {
	settings := b.Normalize(req.Settings)

	prompt := req.Text
	if suffixes, ok := styleSuffixes[settings["style"]]; ok {
		prompt = req.Text + ", " + strings.Join(suffixes, ", ")
	}

	ratio := sizeRatios["square"]
	if r, ok := sizeRatios[settings["size"]]; ok {
		ratio = r
	}
	return prompt, ratio
}

// Normalize は列挙定義に基づいて選択値を検証します。
// 定義にないオプション名は落とし、許可されない値は既定値に置き換えます。
func (b *Builder) Normalize(settings map[string]string) map[string]string {
	normalized := make(map[string]string, len(b.cfg.Options))
	for _, opt := range b.cfg.Options {
		value, ok := settings[opt.Name]
		if !ok || !opt.Allows(value) {
			value = opt.Default
		}
		normalized[opt.Name] = value
	}
	return normalized
}
