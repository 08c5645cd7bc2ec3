package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName は配信ルートに置ける任意の設定ファイル名
// 存在しない場合はデフォルト値のまま起動する
const ConfigFileName = "shisha.yaml"

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Preview PreviewConfig `yaml:"preview"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // 優先するポート番号（空きがなければ順に探索する）

	// ポート探索の最大試行回数
	MaxPortAttempts int `yaml:"max_port_attempts"`

	// タイムアウト設定
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout time.Duration `yaml:"write_timeout"` // 書き込みタイムアウト
}

// PreviewConfig はプレビュー配信の設定
type PreviewConfig struct {
	Root      string `yaml:"root"`       // 配信ルートディレクトリ
	EntryFile string `yaml:"entry_file"` // 起動の前提となるエントリファイル

	// 開発用に全レスポンスへ付与するヘッダー値
	AllowOrigin  string `yaml:"allow_origin"`  // Access-Control-Allow-Origin
	CacheControl string `yaml:"cache_control"` // Cache-Control
}

// Load は設定を読み込む
// 配信ルートはカレントディレクトリとする
func Load() (*Config, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("カレントディレクトリの取得に失敗: %w", err)
	}
	return LoadFrom(root)
}

// LoadFrom は指定した配信ルートを基準に設定を読み込む
// デフォルト値 → 配信ルートの shisha.yaml → 環境変数 の順で上書きする
func LoadFrom(root string) (*Config, error) {
	// デフォルト設定を作成
	cfg := &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            5173,
			MaxPortAttempts: 10,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    0, // 大きなファイルの配信用にタイムアウト無効化
		},
		Preview: PreviewConfig{
			Root:         root,
			EntryFile:    "index.html",
			AllowOrigin:  "*",
			CacheControl: "no-store, no-cache, must-revalidate",
		},
	}

	// 配信ルートに設定ファイルがあれば読み込む（なければそのまま）
	if err := cfg.loadFile(filepath.Join(root, ConfigFileName)); err != nil {
		return nil, err
	}

	// 環境変数で上書き
	cfg.Server.Host = getEnvOrDefault("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvAsIntOrDefault("PORT", cfg.Server.Port)

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// loadFile は設定ファイルを読み込んで上書きする
// ファイルが存在しない場合はエラーにしない
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("設定ファイルの解析に失敗 (%s): %w", path, err)
	}

	return nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}
	if c.Server.MaxPortAttempts < 1 {
		return fmt.Errorf("無効なポート探索回数: %d", c.Server.MaxPortAttempts)
	}

	// プレビュー設定の検証
	if c.Preview.Root == "" {
		return fmt.Errorf("配信ルートディレクトリが設定されていません")
	}
	if c.Preview.EntryFile == "" {
		return fmt.Errorf("エントリファイルが設定されていません")
	}
	if c.Preview.AllowOrigin == "" {
		return fmt.Errorf("Access-Control-Allow-Origin の値が設定されていません")
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
