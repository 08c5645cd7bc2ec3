package server

import (
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// indexPage はディレクトリ形式に書き換えるインデックスファイルのサフィックス
const indexPage = "/index.html"

// staticHandler は配信ルート配下の静的ファイルを配信するハンドラを返す
// パスの解決はhttp.FileServerに任せる（"/"基準でクリーンされるため
// 配信ルート外へのトラバーサルはできない）
func staticHandler(root string) gin.HandlerFunc {
	fileServer := http.FileServer(http.Dir(root))

	return func(c *gin.Context) {
		// "/index.html"への直接リクエストはディレクトリ形式へ書き換えて
		// そのまま200で配信する（FileServerの"./"へのリダイレクトを避ける）
		if strings.HasSuffix(c.Request.URL.Path, indexPage) {
			c.Request.URL.Path = strings.TrimSuffix(c.Request.URL.Path, indexPage) + "/"
		}

		// 拡張子からContent-Typeを推定できないファイルは内容から判定する
		if ct := detectContentType(root, c.Request.URL.Path); ct != "" {
			c.Writer.Header().Set("Content-Type", ct)
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}

// detectContentType は拡張子で判定できないファイルのContent-Typeを
// ファイル内容から検出する
// 標準の推定に任せられる場合は空文字列を返す
func detectContentType(root, urlPath string) string {
	if ext := path.Ext(urlPath); ext != "" && mime.TypeByExtension(ext) != "" {
		return ""
	}

	// 配信ルート外を参照しないよう"/"基準でクリーンしてから結合する
	cleaned := path.Clean("/" + urlPath)
	name := filepath.Join(root, filepath.FromSlash(cleaned))

	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		return ""
	}

	mt, err := mimetype.DetectFile(name)
	if err != nil {
		return ""
	}
	return mt.String()
}
