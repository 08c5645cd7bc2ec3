// Package main はShishaサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"shisha/internal/config"
	"shisha/internal/preview"
	"shisha/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host     = flag.String("host", "", "サーバーのホスト (デフォルト: 127.0.0.1)")
		port     = flag.Int("port", 0, "優先するポート (デフォルト: 5173)")
		dir      = flag.String("dir", "", "配信ディレクトリ (デフォルト: カレントディレクトリ)")
		attempts = flag.Int("attempts", 0, "ポート探索の最大試行回数 (デフォルト: 10)")
		help     = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Shisha")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む（-dir指定時はそのディレクトリを配信ルートとして、
	// shisha.yamlの探索もそこで行う）
	var cfg *config.Config
	var err error
	if *dir != "" {
		root, absErr := filepath.Abs(*dir)
		if absErr != nil {
			log.Fatalf("配信ディレクトリの解決に失敗しました: %v", absErr)
		}
		cfg, err = config.LoadFrom(root)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *attempts != 0 {
		cfg.Server.MaxPortAttempts = *attempts
	}

	// 上書き後の設定を検証する
	if err := cfg.Validate(); err != nil {
		log.Fatalf("設定の検証に失敗しました: %v", err)
	}

	// エントリファイルの存在を確認する
	if err := preview.CheckEntryFile(cfg.Preview.Root, cfg.Preview.EntryFile); err != nil {
		fmt.Printf("❌ エラー: %v\n", err)
		os.Exit(1)
	}

	// 利用可能なポートを探索する
	freePort, err := preview.FindFreePort(cfg.Server.Host, cfg.Server.Port, cfg.Server.MaxPortAttempts)
	if err != nil {
		fmt.Printf("❌ エラー: %v\n", err)
		os.Exit(1)
	}
	cfg.Server.Port = freePort

	// サーバーを作成
	srv := server.New(cfg)

	// 起動バナーを出力
	preview.PrintBanner(os.Stdout, cfg.Preview.Root, fmt.Sprintf("http://%s", cfg.ServerAddress()))

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}

	fmt.Println()
	fmt.Println("👋 サーバーを停止しました")
}
