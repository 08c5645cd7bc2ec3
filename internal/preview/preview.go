package preview

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CheckEntryFile は配信ルートにエントリファイルが存在することを検証する
// サーバー起動前の前提条件チェックで、ソケットをバインドする前に呼ぶ
func CheckEntryFile(root, entry string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("配信ディレクトリにアクセスできません (%s): %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("配信ルートがディレクトリではありません: %s", root)
	}

	entryPath := filepath.Join(root, entry)
	info, err = os.Stat(entryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s が %s に見つかりません", entry, root)
		}
		return fmt.Errorf("%s にアクセスできません: %w", entry, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s がファイルではありません", entryPath)
	}

	return nil
}

// PrintBanner は起動バナーを出力する
func PrintBanner(w io.Writer, root, url string) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "🚀 Shisha Web 開発サーバー")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "📁 配信ディレクトリ: %s\n", root)
	fmt.Fprintf(w, "🌐 アクセスURL: %s\n", url)
	fmt.Fprintln(w, "💡 ヒント: Ctrl+C でサーバーを停止します")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "サーバー実行中...")
	fmt.Fprintln(w)
}
