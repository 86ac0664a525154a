package promptimagekit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/shouni/go-gemini-client/pkg/gemini"

	"github.com/shouni/prompt-image-kit/pkg/config"
)

// --- Mocks ---

type stubAIClient struct {
	lastPrompt string
}

func (s *stubAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	s.lastPrompt = parts[0].Text
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("fake-image")}}},
				},
			}},
		},
	}, nil
}

func (s *stubAIClient) GenerateContent(ctx context.Context, model string, prompt string) (*gemini.Response, error) {
	return nil, nil
}

func (s *stubAIClient) UploadFile(ctx context.Context, data []byte, mimeType, displayName string) (string, string, error) {
	return "", "", nil
}

func (s *stubAIClient) DeleteFile(ctx context.Context, name string) error { return nil }

func (s *stubAIClient) GetFile(ctx context.Context, name string) (*genai.File, error) {
	return nil, nil
}

type stubHTTPClient struct{}

func (s *stubHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return nil, nil
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) { return nil, nil }

func (s *stubHTTPClient) DoRequest(req *http.Request) ([]byte, error) { return nil, nil }

func (s *stubHTTPClient) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	return nil
}

func (s *stubHTTPClient) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	return nil, nil
}

func (s *stubHTTPClient) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	return nil, nil
}

func (s *stubHTTPClient) IsSafeURL(urlStr string) (bool, error) { return true, nil }

func (s *stubHTTPClient) IsSecureServiceURL(serviceURL string) bool { return true }

// 投稿から画像配信までの一気通貫の確認
func TestNewHandler_EndToEnd(t *testing.T) {
	ai := &stubAIClient{}
	handler, err := NewHandler(ai, &stubHTTPClient{}, nil, config.Default())
	require.NoError(t, err)

	form := url.Values{"prompt": {"a cat"}, "style": {"realistic"}}
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	// スタイル修飾語が付加されたプロンプトが境界まで届いている
	assert.True(t, strings.HasPrefix(ai.lastPrompt, "a cat, "), "got %q", ai.lastPrompt)
	assert.Contains(t, ai.lastPrompt, "photorealistic")

	// ページには保管庫の参照が描画される
	start := strings.Index(body, `src="/images/`)
	require.GreaterOrEqual(t, start, 0, "image ref not rendered: %s", body)
	rest := body[start+len(`src="`):]
	ref := rest[:strings.Index(rest, `"`)]

	// その参照から画像本体を取得できる
	imgReq := httptest.NewRequest(http.MethodGet, ref, nil)
	imgRec := httptest.NewRecorder()
	handler.ServeHTTP(imgRec, imgReq)

	require.Equal(t, http.StatusOK, imgRec.Code)
	assert.Equal(t, "fake-image", imgRec.Body.String())
	assert.Equal(t, "image/png", imgRec.Header().Get("Content-Type"))
}
