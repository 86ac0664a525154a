package generator

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/shouni/prompt-image-kit/pkg/domain"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// --- Mocks ---

type mockAIClient struct {
	generateCalled int
	lastModel      string
	lastParts      []*genai.Part
	lastOpts       gemini.GenerateOptions
	generateFunc   func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.generateCalled++
	m.lastModel = model
	m.lastParts = parts
	m.lastOpts = opts
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, parts, opts)
	}
	return inlineImageResponse([]byte("fake-image-binary"), "image/png"), nil
}

func (m *mockAIClient) GenerateContent(ctx context.Context, model string, prompt string) (*gemini.Response, error) {
	return nil, nil
}

func (m *mockAIClient) UploadFile(ctx context.Context, data []byte, mimeType, displayName string) (string, string, error) {
	return "", "", nil
}

func (m *mockAIClient) DeleteFile(ctx context.Context, name string) error { return nil }

func (m *mockAIClient) GetFile(ctx context.Context, name string) (*genai.File, error) {
	return nil, nil
}

// inlineImageResponse は InlineData を1つ含む正常レスポンスを組み立てるのだ。
func inlineImageResponse(data []byte, mimeType string) *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
				},
			}},
		},
	}
}

type mockBuilder struct{}

func (m *mockBuilder) Build(req domain.PromptRequest) (string, string) {
	return req.Text + ", enhanced", "1:1"
}

func (m *mockBuilder) Normalize(settings map[string]string) map[string]string {
	return settings
}

type mockHTTPClient struct {
	data    []byte
	err     error
	fetched []string
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.fetched = append(m.fetched, url)
	return m.data, m.err
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) { return nil, nil }

func (m *mockHTTPClient) DoRequest(req *http.Request) ([]byte, error) { return nil, nil }

func (m *mockHTTPClient) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	return nil
}

func (m *mockHTTPClient) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) IsSafeURL(urlStr string) (bool, error) { return true, nil }

func (m *mockHTTPClient) IsSecureServiceURL(serviceURL string) bool { return true }

type mockReader struct {
	data []byte
	err  error
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func (m *mockReader) List(ctx context.Context, path string, callback func(filePath string) error) error {
	return nil
}

type mockStore struct {
	puts []string
	ref  string
}

func (m *mockStore) Put(promptText string, data []byte, mimeType string) string {
	m.puts = append(m.puts, promptText)
	if m.ref != "" {
		return m.ref
	}
	return "/images/mock.png"
}

type mockImageGenerator struct {
	called int
	out    *ImageOutput
	err    error
	delay  func(ctx context.Context) error
}

func (m *mockImageGenerator) GenerateImage(ctx context.Context, req domain.PromptRequest) (*ImageOutput, error) {
	m.called++
	if m.delay != nil {
		if err := m.delay(ctx); err != nil {
			return nil, err
		}
	}
	return m.out, m.err
}
