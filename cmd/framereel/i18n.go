// Package main provides localization for the framereel CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input and Output": "入出力",
		"Video":            "動画",
		"Debug":            "デバッグ",
		"Logging":          "ログ",

		// Root command
		"Assemble a directory of images into a video": "ディレクトリ内の画像を動画にまとめる",

		// Inspect command
		"Show video track information of an MP4 file": "MP4ファイルの映像トラック情報を表示",
		"A video file argument is required":           "動画ファイルの引数が必要です",
		"Codec: %s":                                   "コーデック: %s",
		"Size: %dx%d":                                 "サイズ: %dx%d",
		"Frames: %d":                                  "フレーム数: %d",
		"Fragmented: %v":                              "フラグメント化: %v",

		// Input/Output flags
		"Directory containing the images":       "画像を含むディレクトリ",
		"Output video file (default: demo.mp4)": "出力動画ファイル（デフォルト: demo.mp4）",
		"YAML configuration file":               "YAML設定ファイル",

		// Video flags
		"Frames per second (default: 30)":                           "1秒あたりのフレーム数（デフォルト: 30）",
		"Four-character codec code (default: mp4v)":                 "4文字のコーデックコード（デフォルト: mp4v）",
		"Frame size policy: smallest or largest (default: largest)": "フレームサイズの方針: smallest または largest（デフォルト: largest）",
		"Encoder backend: auto, ffmpeg or mjpeg (default: auto)":    "エンコーダー: auto, ffmpeg, mjpeg（デフォルト: auto）",
		"Path to the ffmpeg executable":                             "ffmpeg実行ファイルのパス",
		"Quality 1-100 (default: 90)":                               "品質 1-100（デフォルト: 90）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Prompts
		"Image directory: ":                       "画像ディレクトリ: ",
		"No images found in %s, please try again": "%s に画像が見つかりません。もう一度入力してください",
		"Output file [%s]: ":                      "出力ファイル [%s]: ",
		"Frames per second [%d]: ":                "1秒あたりのフレーム数 [%d]: ",
		"Please enter a positive whole number":    "正の整数を入力してください",

		// Runtime messages
		"Error: %s":                   "エラー: %s",
		"Using %s encoder":            "%s エンコーダーを使用します",
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Summary output flag
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",

		// Summary content
		"Conversion Summary": "変換サマリー",
		"Input":              "入力",
		"Settings":           "設定",
		"Item":               "項目",
		"Value":              "値",
		"Image Directory":    "画像ディレクトリ",
		"Files Found":        "検出ファイル数",
		"Decoded":            "読み込み成功",
		"Skipped":            "スキップ",
		"Skipped Files":      "スキップしたファイル",
		"Size Policy":        "サイズ方針",
		"Frame Rate":         "フレームレート",
		"Codec":              "コーデック",
		"Encoder":            "エンコーダー",
		"fallback":           "フォールバック",
		"Output":             "出力先",
		"Frame Size":         "フレームサイズ",
		"Frames":             "フレーム数",
		"Duration":           "再生時間",
		"File Size":          "ファイルサイズ",
		"Generated at":       "生成日時",
	})
}
