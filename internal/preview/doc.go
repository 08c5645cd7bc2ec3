// Package preview プレビュー起動前の準備を担う
//
// # 責務
// - 配信ルートとエントリファイルの事前検証
// - 利用可能なポートの探索
// - 起動バナーの出力
//
// # 仕様
// - エントリファイル（index.html）が存在しない場合は起動を拒否する
// - ポート探索は優先ポートから順にバインドを試行し、最初に成功した
//   ポートを返す（試行ごとにソケットを開いてすぐ閉じる）
// - 試行回数内に空きポートが見つからない場合はエラーを返し、
//   呼び出し側が起動を中止する（このレイヤーでは再試行しない）
package preview
