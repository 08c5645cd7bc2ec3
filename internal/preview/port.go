package preview

import (
	"fmt"
	"net"
	"strconv"
)

// FindFreePort は利用可能なポートを探索する
// 優先ポートから順に最大 maxAttempts 個のポートへバインドを試行し、
// 最初に成功したポート番号を返す
func FindFreePort(host string, start, maxAttempts int) (int, error) {
	for port := start; port < start+maxAttempts; port++ {
		addr := net.JoinHostPort(host, strconv.Itoa(port))
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			// 使用中のポートは読み飛ばして次を試す
			continue
		}
		if err := ln.Close(); err != nil {
			return 0, fmt.Errorf("探索用ソケットのクローズに失敗: %w", err)
		}
		return port, nil
	}

	return 0, fmt.Errorf("利用可能なポートが見つかりません (試行範囲: %d-%d)", start, start+maxAttempts-1)
}
