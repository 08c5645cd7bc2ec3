package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// serveRequest はサーバーのハンドラチェーンへ直接リクエストを流す
func serveRequest(t *testing.T, srv *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.engine.ServeHTTP(rec, req)
	return rec
}

// TestPreviewHeadersOnEveryResponse は全レスポンスへのヘッダー付与をテストする
func TestPreviewHeadersOnEveryResponse(t *testing.T) {
	cfg := newTestConfig(newTestRoot(t))
	srv := New(cfg)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"成功レスポンス", http.MethodGet, "/", http.StatusOK},
		{"エントリファイル直接指定", http.MethodGet, "/index.html", http.StatusOK},
		{"404レスポンス", http.MethodGet, "/missing.html", http.StatusNotFound},
		{"HEADリクエスト", http.MethodHead, "/index.html", http.StatusOK},
		{"プリフライト", http.MethodOptions, "/", http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serveRequest(t, srv, tc.method, tc.path)

			if rec.Code != tc.expectedStatus {
				t.Errorf("予期しないステータスコード: got %d, want %d", rec.Code, tc.expectedStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("CORSヘッダーが一致しません: got %q, want *", got)
			}
			if got := rec.Header().Get("Cache-Control"); got != cfg.Preview.CacheControl {
				t.Errorf("Cache-Controlヘッダーが一致しません: got %q, want %q",
					got, cfg.Preview.CacheControl)
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, HEAD, OPTIONS" {
				t.Errorf("Allow-Methodsヘッダーが一致しません: got %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
				t.Errorf("Allow-Headersヘッダーが一致しません: got %q", got)
			}
			if rec.Header().Get("X-Request-Id") == "" {
				t.Error("X-Request-Idヘッダーが付与されていません")
			}
		})
	}
}

// TestPathTraversal は配信ルート外へのパストラバーサルをテストする
func TestPathTraversal(t *testing.T) {
	// 配信ルートの外側に秘密のファイルを置く
	parent := t.TempDir()
	secret := "外に出てはいけない内容"
	if err := os.WriteFile(filepath.Join(parent, "secret.txt"), []byte(secret), 0644); err != nil {
		t.Fatalf("テスト用ファイルの作成に失敗しました: %v", err)
	}

	root := filepath.Join(parent, "public")
	if err := os.Mkdir(root, 0755); err != nil {
		t.Fatalf("配信ルートの作成に失敗しました: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0644); err != nil {
		t.Fatalf("テスト用ファイルの作成に失敗しました: %v", err)
	}

	srv := New(newTestConfig(root))

	traversals := []string{
		"/../secret.txt",
		"/../../secret.txt",
		"/subdir/../../secret.txt",
	}

	for _, target := range traversals {
		t.Run(target, func(t *testing.T) {
			rec := serveRequest(t, srv, http.MethodGet, target)

			if strings.Contains(rec.Body.String(), secret) {
				t.Errorf("配信ルート外のファイルが配信されました: %s", target)
			}
		})
	}
}

// TestContentTypes はContent-Typeの決定をテストする
func TestContentTypes(t *testing.T) {
	root := newTestRoot(t)

	// 拡張子を持たないJSONファイル（内容から判定される）
	if err := os.WriteFile(filepath.Join(root, "manifest"), []byte(`{"name": "shisha", "version": 1}`), 0644); err != nil {
		t.Fatalf("テスト用ファイルの作成に失敗しました: %v", err)
	}

	srv := New(newTestConfig(root))

	testCases := []struct {
		name     string
		path     string
		expected string // Content-Typeに含まれるべき部分文字列
	}{
		{"HTMLファイル", "/index.html", "text/html"},
		{"CSSファイル", "/style.css", "text/css"},
		{"拡張子なしJSON", "/manifest", "json"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serveRequest(t, srv, http.MethodGet, tc.path)

			if rec.Code != http.StatusOK {
				t.Fatalf("予期しないステータスコード: got %d, want %d", rec.Code, http.StatusOK)
			}
			if got := rec.Header().Get("Content-Type"); !strings.Contains(got, tc.expected) {
				t.Errorf("Content-Typeが一致しません: got %q, want substring %q", got, tc.expected)
			}
		})
	}
}

// TestRequestIDUnique はリクエストIDが毎回変わることをテストする
func TestRequestIDUnique(t *testing.T) {
	srv := New(newTestConfig(newTestRoot(t)))

	first := serveRequest(t, srv, http.MethodGet, "/").Header().Get("X-Request-Id")
	second := serveRequest(t, srv, http.MethodGet, "/").Header().Get("X-Request-Id")

	if first == "" || second == "" {
		t.Fatal("X-Request-Idヘッダーが付与されていません")
	}
	if first == second {
		t.Errorf("リクエストIDが重複しています: %s", first)
	}
}
