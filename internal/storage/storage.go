package storage

import (
	"context"
	"io"
)

// Storage は履歴書ファイルの保存・削除を抽象化するインターフェース。
// ローカルファイルシステム実装の他、MinIO / S3 互換ストレージに差し替え可能。
type Storage interface {
	// Save はファイルを保存し、保存先の位置 (パスまたはオブジェクト URL) を返す。
	// key はストレージ内の一意な名前。size が不明な場合は -1 を渡す。
	Save(ctx context.Context, key string, data io.Reader, size int64, contentType string) (location string, err error)

	// Delete は key に対応するファイルを削除する。存在しない場合はエラーにしない。
	Delete(ctx context.Context, key string) error
}
