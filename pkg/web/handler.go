package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shouni/prompt-image-kit/pkg/config"
	"github.com/shouni/prompt-image-kit/pkg/controller"
	"github.com/shouni/prompt-image-kit/pkg/domain"
	"github.com/shouni/prompt-image-kit/pkg/store"
)

// Server は単一ページの UI とそのフォーム投稿を処理します。
// 状態はすべて SubmissionController が所有し、Server は描画だけを行います。
type Server struct {
	ctrl  *controller.SubmissionController
	store *store.Store
	cfg   config.Config
	tmpl  *template.Template
}

// NewHandler は依存関係を注入してルーターを組み立てます。
func NewHandler(ctrl *controller.SubmissionController, imageStore *store.Store, cfg config.Config) (http.Handler, error) {
	if ctrl == nil {
		return nil, fmt.Errorf("ctrl is required")
	}
	if imageStore == nil {
		return nil, fmt.Errorf("imageStore is required")
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("テンプレートのパースに失敗しました: %w", err)
	}

	s := &Server{ctrl: ctrl, store: imageStore, cfg: cfg, tmpl: tmpl}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.pageHandler)
	r.Post("/generate", s.generateHandler)
	r.Get("/images/{name}", s.imageHandler)
	r.Get("/static/style.css", styleHandler)
	r.Get("/healthz", healthzHandler)

	return r, nil
}

// pageData はページテンプレートへ渡す描画モデルです。
type pageData struct {
	View    domain.View
	Options []config.Option
	Prompt  string
}

// pageHandler は現在の対話状態からページを描画します。
func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, s.ctrl.View(), "")
}

// generateHandler はフォーム投稿を受けて1回の生成を実行し、結果を描画します。
// 実行中の再投稿はコントローラー側で無視され、ローディング表示のまま返ります。
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	prompt := r.PostFormValue("prompt")
	settings := make(map[string]string, len(s.cfg.Options))
	for _, opt := range s.cfg.Options {
		if v := r.PostFormValue(opt.Name); v != "" {
			settings[opt.Name] = v
		}
	}

	view := s.ctrl.Submit(r.Context(), prompt, settings)
	s.renderPage(w, view, prompt)
}

// imageHandler は保管庫から生成画像を配信します。
func (s *Server) imageHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	img, ok := s.store.Get(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", img.MimeType)
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(img.Data); err != nil {
		slog.Warn("画像の書き出しに失敗しました", "name", name, "error", err)
	}
}

func styleHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css")
	fmt.Fprint(w, styleSheet)
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) renderPage(w http.ResponseWriter, view domain.View, prompt string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{View: view, Options: s.cfg.Options, Prompt: prompt}
	if err := s.tmpl.Execute(w, data); err != nil {
		slog.Warn("ページの描画に失敗しました", "error", err)
	}
}
