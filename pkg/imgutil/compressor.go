package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

// CompressToJPEG は生成画像（PNG, GIF, JPEG等）をJPEG形式に再圧縮します。
// 配信前のサイズ削減が目的のため、再圧縮で元より大きくなった場合はエラーを返し、
// 呼び出し側に元データの利用を促します。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("JPEGエンコードに失敗しました: %w", err)
	}

	if buf.Len() >= len(data) {
		return nil, fmt.Errorf("再圧縮で縮小できませんでした (format=%s)", format)
	}
	return buf.Bytes(), nil
}
