// Package promptimagekit は、単一ページの「プロンプトから画像生成」UIを支える
// 部品一式（対話状態機械、生成境界、プロンプト構築、画像保管、HTTPハンドラー）と
// その標準的な組み立てを提供します。
package promptimagekit

import (
	"net/http"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/prompt-image-kit/pkg/config"
	"github.com/shouni/prompt-image-kit/pkg/controller"
	"github.com/shouni/prompt-image-kit/pkg/generator"
	"github.com/shouni/prompt-image-kit/pkg/prompts"
	"github.com/shouni/prompt-image-kit/pkg/store"
	"github.com/shouni/prompt-image-kit/pkg/web"
)

// NewHandler は設定と外部クライアント群からページ一式の http.Handler を組み立てます。
// reader は gs:// 参照を扱わない構成では nil で構いません。
func NewHandler(
	aiClient gemini.GenerativeModel,
	httpClient httpkit.ClientInterface,
	reader remoteio.InputReader,
	cfg config.Config,
) (http.Handler, error) {
	builder := prompts.NewBuilder(cfg)

	gen, err := generator.NewGeminiGenerator(aiClient, builder, reader, httpClient, cfg.Model)
	if err != nil {
		return nil, err
	}

	imageStore := store.New(cfg.StoreTTL())

	client, err := generator.NewClient(gen, imageStore, cfg.RequestTimeout())
	if err != nil {
		return nil, err
	}

	ctrl := controller.NewSubmissionController(client)
	return web.NewHandler(ctrl, imageStore, cfg)
}
