package server

import (
	"log"
	"net/http"
	"time"

	"shisha/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey はコンテキストに保存するリクエストIDのキー
const requestIDKey = "requestID"

// requestID は全レスポンスにX-Request-Idヘッダーを付与するミドルウェア
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// requestLogger はリクエストごとにログを出力するミドルウェア
// タイムスタンプはlogパッケージの標準プレフィックスが付与する
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("\"%s %s %s\" %d %s (id=%s)",
			c.Request.Method,
			c.Request.URL.RequestURI(),
			c.Request.Proto,
			c.Writer.Status(),
			time.Since(start),
			c.GetString(requestIDKey),
		)
	}
}

// previewHeaders は全レスポンスに開発用ヘッダーを付与するミドルウェア
// ブラウザキャッシュがファイル変更を隠さないよう、成功・エラーを問わず
// CORS許可とキャッシュ無効化のヘッダーを注入する
func previewHeaders(cfg config.PreviewConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
		header.Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type")
		header.Set("Cache-Control", cfg.CacheControl)

		// プリフライトはディスクに触れず即応答する
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
