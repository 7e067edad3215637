package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Converting %s to %s":             "%s を %s に変換中",
		"Output saved to %s":              "出力を %s に保存しました",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Starting pipeline":               "パイプラインを開始します",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Discover stage
		"Found %d image files in %s": "%[2]s に %[1]d 個の画像ファイルが見つかりました",

		// Decode stage
		"Progress: %d/%d (%.1f%%)":        "進捗: %d/%d (%.1f%%)",
		"Successfully read %d images":     "%d 枚の画像を読み込みました",
		"Failed to read %s, skipping: %v": "%s の読み込みに失敗しました。スキップします: %v",
		"Skipped %d unreadable files":     "読み込めないファイルを %d 個スキップしました",

		// Normalize stage
		"Normalizing %d images to %s (%s policy)": "%d 枚の画像を %s に正規化中 (%s ポリシー)",

		// Encode stage
		"Opened %s (%dx%d, %d fps, %s)":          "%s を開きました (%dx%d, %d fps, %s)",
		"Encoding %d frames at %d fps":           "%d フレームを %d fps でエンコード中",
		"Video encoded: %d bytes":                "動画エンコード完了: %d バイト",
		"Could not remove partial output %s: %v": "不完全な出力 %s を削除できませんでした: %v",

		// Encoder selection
		"Using %s encoder":                                    "%s エンコーダーを使用します",
		"ffmpeg not available, falling back to MJPEG encoder": "ffmpeg が利用できないため MJPEG エンコーダーにフォールバックします",

		// Debug output
		"Failed to save manifest: %v": "マニフェストの保存に失敗しました: %v",
		"Failed to save frame %d: %v": "フレーム %d の保存に失敗しました: %v",

		// Errors
		"Failed to discover images: %s":  "画像の検出に失敗しました: %s",
		"Failed to decode images: %s":    "画像の読み込みに失敗しました: %s",
		"Failed to normalize images: %s": "画像の正規化に失敗しました: %s",
		"Failed to encode video: %s":     "動画のエンコードに失敗しました: %s",
	})
}
