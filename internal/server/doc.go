// Package server は、プレビュー用HTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、ミドルウェアチェーン、
// 静的ファイルの配信、グレースフルシャットダウンを担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 配信ルート配下の静的ファイルの配信
//   - 全レスポンスへのCORS・キャッシュ無効化ヘッダーの付与
//   - リクエストログの出力
//   - グレースフルシャットダウン
//
// 仕様:
//   - ルーティングとミドルウェアはgin-gonic/ginを使用
//   - 静的ファイルの解決はnet/httpのFileServerを使用
//     （配信ルート外へのパストラバーサルを許さない）
//   - 継承ではなくミドルウェアの合成でヘッダー付与・ログを実現
//   - リクエスト処理中のpanicはサーバー全体を停止させない
//   - コンテキストのキャンセルとシグナル（SIGINT/SIGTERM）の
//     どちらでも停止できる
package server
