package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config はキット全体の設定です。YAML から読み込みます。
type Config struct {
	// Model は生成に使用するモデル名です。
	Model string `yaml:"model"`
	// RequestTimeoutSeconds は1回の生成要求の期限（秒）です。
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
	// StoreTTLSeconds は生成画像をメモリ上に保持する期間（秒）です。
	StoreTTLSeconds int `yaml:"store_ttl_seconds"`
	// Options は画面の設定行に並ぶオプション群です。選択値はここで列挙した値に制約されます。
	Options []Option `yaml:"options"`
}

// Option は1つの設定項目（例: style, size）の列挙定義です。
type Option struct {
	Name    string   `yaml:"name"`
	Values  []string `yaml:"values"`
	Default string   `yaml:"default"`
}

// Default は設定ファイルなしで動作するための既定値を返します。
// オプションの既定セットは画面のセレクターと一対一で対応します。
func Default() Config {
	return Config{
		Model:          "gemini-2.5-flash-image",
		RequestTimeoutSeconds: 60,
		StoreTTLSeconds:       3600,
		Options: []Option{
			{
				Name:    "style",
				Values:  []string{"realistic", "anime", "watercolor", "pixel-art"},
				Default: "realistic",
			},
			{
				Name:    "size",
				Values:  []string{"square", "portrait", "landscape"},
				Default: "square",
			},
		},
	}
}

// Load は YAML ファイルから設定を読み込みます。
// 未指定の項目には既定値を補います。
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}
	return Parse(data)
}

// Parse は YAML バイト列から設定を構築します。
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("設定のパースに失敗しました: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive")
	}
	for _, opt := range c.Options {
		if opt.Name == "" {
			return fmt.Errorf("option name is required")
		}
		if len(opt.Values) == 0 {
			return fmt.Errorf("option %q has no values", opt.Name)
		}
		if !contains(opt.Values, opt.Default) {
			return fmt.Errorf("option %q: default %q is not among its values", opt.Name, opt.Default)
		}
	}
	return nil
}

// RequestTimeout は生成要求の期限を time.Duration で返します。
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// StoreTTL は画像保持期間を time.Duration で返します。
func (c Config) StoreTTL() time.Duration {
	return time.Duration(c.StoreTTLSeconds) * time.Second
}

// OptionByName は名前でオプション定義を引きます。
func (c Config) OptionByName(name string) (Option, bool) {
	for _, opt := range c.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Allows は指定オプションで value が選択可能かどうかを返します。
func (o Option) Allows(value string) bool {
	return contains(o.Values, value)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
