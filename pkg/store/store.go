package store

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/shouni/prompt-image-kit/pkg/imgutil"
)

const (
	// CompressionThreshold を超える画像は配信前に JPEG へ再圧縮します。
	CompressionThreshold = 4 << 20 // 4MiB
	// ImageCompressionQuality は再圧縮時の JPEG 品質です。
	ImageCompressionQuality = 85

	namePrefixLen = 10
	refPrefix     = "/images/"
)

// Image は保管された1枚の生成画像です。
type Image struct {
	Data      []byte
	MimeType  string
	expiresAt time.Time
}

// Store は生成画像をページ寿命の間だけ保持するインメモリ保管庫です。
// セッションを跨ぐ永続化は行いません。TTL を過ぎた画像は取得時に破棄されます。
type Store struct {
	mu     sync.Mutex
	images map[string]Image
	ttl    time.Duration
	now    func() time.Time
}

// New は TTL 付きの Store を初期化します。ttl が 0 以下の場合は無期限です。
func New(ttl time.Duration) *Store {
	return &Store{
		images: make(map[string]Image),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Put は画像を保管し、配信用の不透明な参照 (/images/<name>) を返します。
// 名前はプロンプトの先頭とタイムスタンプから組み立てます。
func (s *Store) Put(promptText string, data []byte, mimeType string) string {
	if len(data) > CompressionThreshold {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			slog.Info("画像を再圧縮しました", "before", len(data), "after", len(compressed))
			data = compressed
			mimeType = "image/jpeg"
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := s.uniqueNameLocked(promptText, mimeType)
	img := Image{Data: data, MimeType: mimeType}
	if s.ttl > 0 {
		img.expiresAt = s.now().Add(s.ttl)
	}
	s.images[name] = img
	return refPrefix + name
}

// Get は名前で画像を引きます。TTL 切れの画像は破棄して見つからなかった扱いにします。
func (s *Store) Get(name string) (Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	img, ok := s.images[name]
	if !ok {
		return Image{}, false
	}
	if !img.expiresAt.IsZero() && s.now().After(img.expiresAt) {
		delete(s.images, name)
		return Image{}, false
	}
	return img, true
}

func (s *Store) uniqueNameLocked(promptText, mimeType string) string {
	base := fmt.Sprintf("%s_%d", sanitizePrefix(promptText), s.now().Unix())
	ext := extensionFor(mimeType)

	name := base + ext
	for i := 1; ; i++ {
		if _, exists := s.images[name]; !exists {
			return name
		}
		name = fmt.Sprintf("%s-%d%s", base, i, ext)
	}
}

// sanitizePrefix はプロンプト先頭をファイル名に使える形へ丸めます。
func sanitizePrefix(promptText string) string {
	var b strings.Builder
	for _, r := range promptText {
		if b.Len() >= namePrefixLen {
			break
		}
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
