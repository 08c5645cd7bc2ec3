package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"shisha/internal/config"
	"shisha/internal/preview"
	"shisha/internal/server"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// エントリファイルの存在を確認する（ソケットをバインドする前に）
	if err := preview.CheckEntryFile(cfg.Preview.Root, cfg.Preview.EntryFile); err != nil {
		fmt.Printf("❌ エラー: %v\n", err)
		fmt.Println("   プロジェクトのルートディレクトリで実行してください")
		os.Exit(1)
	}

	// 利用可能なポートを探索する
	port, err := preview.FindFreePort(cfg.Server.Host, cfg.Server.Port, cfg.Server.MaxPortAttempts)
	if err != nil {
		fmt.Printf("❌ エラー: %v\n", err)
		os.Exit(1)
	}
	cfg.Server.Port = port

	// サーバーを作成
	srv := server.New(cfg)

	// 起動バナーを出力
	preview.PrintBanner(os.Stdout, cfg.Preview.Root, fmt.Sprintf("http://%s", cfg.ServerAddress()))

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動（割り込みで正常終了する）
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}

	fmt.Println()
	fmt.Println("👋 サーバーを停止しました")
}
