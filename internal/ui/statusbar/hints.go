package statusbar

import "github.com/hnakamura/ganttea/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "j/k: 移動  a: 追加  e: 編集  d: 削除  z: ズーム  ?: ヘルプ  q: 終了"
	case types.ModeDialog:
		return "Tab: 項目切替  Enter: 決定  Esc: キャンセル"
	default:
		return ""
	}
}
