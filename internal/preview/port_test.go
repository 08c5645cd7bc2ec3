package preview

import (
	"net"
	"strconv"
	"testing"
)

const testHost = "127.0.0.1"

// reservePort はOSに空きポートを割り当てさせ、リスナーごと返す
func reservePort(t *testing.T) (net.Listener, int) {
	t.Helper()

	ln, err := net.Listen("tcp", net.JoinHostPort(testHost, "0"))
	if err != nil {
		t.Fatalf("テスト用リスナーの作成に失敗しました: %v", err)
	}
	return ln, ln.Addr().(*net.TCPAddr).Port
}

// TestFindFreePortReturnsStart は優先ポートが空いている場合をテストする
func TestFindFreePortReturnsStart(t *testing.T) {
	// 空きポートを確保してすぐ解放する
	ln, port := reservePort(t)
	if err := ln.Close(); err != nil {
		t.Fatalf("リスナーのクローズに失敗しました: %v", err)
	}

	got, err := FindFreePort(testHost, port, 1)
	if err != nil {
		t.Fatalf("ポート探索でエラーが発生しました: %v", err)
	}
	if got != port {
		t.Errorf("優先ポートが返されませんでした: got %d, want %d", got, port)
	}
}

// TestFindFreePortSkipsOccupied は使用中ポートの読み飛ばしをテストする
func TestFindFreePortSkipsOccupied(t *testing.T) {
	// 優先ポートを占有したままにする
	ln, port := reservePort(t)
	defer ln.Close()

	got, err := FindFreePort(testHost, port, 10)
	if err != nil {
		t.Fatalf("ポート探索でエラーが発生しました: %v", err)
	}
	if got == port {
		t.Errorf("使用中のポートが返されました: %d", got)
	}
	if got <= port || got >= port+10 {
		t.Errorf("探索範囲外のポートが返されました: got %d, want (%d, %d)", got, port, port+10)
	}

	// 返されたポートは実際にバインドできる
	check, err := net.Listen("tcp", net.JoinHostPort(testHost, strconv.Itoa(got)))
	if err != nil {
		t.Fatalf("返されたポートにバインドできません: %v", err)
	}
	check.Close()
}

// TestFindFreePortExhausted は全ポート使用中の場合をテストする
func TestFindFreePortExhausted(t *testing.T) {
	// 優先ポートのみを占有し、試行回数を1にする
	ln, port := reservePort(t)
	defer ln.Close()

	if _, err := FindFreePort(testHost, port, 1); err == nil {
		t.Error("エラーが期待されましたが、エラーが発生しませんでした")
	}
}
