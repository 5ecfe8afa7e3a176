package validator

// ValidateScene 验证场景标识符（即验证上下文，如 "create"、"update"）
// SceneNone 表示默认验证路径，不附带任何场景
//
// 匹配规则：
//   - 未声明场景的规则在任何场景下都会执行
//   - 声明了场景的规则只在以对应场景调用验证时执行
type ValidateScene string

// 预定义的通用验证场景常量
const (
	SceneNone ValidateScene = "" // 无场景（默认验证路径）
)

// IsNone 是否为默认验证路径
func (s ValidateScene) IsNone() bool {
	return s == SceneNone
}

// String 字符串表示（用于调试和错误描述）
func (s ValidateScene) String() string {
	if s.IsNone() {
		return "<none>"
	}
	return string(s)
}

// matchScenes 判断规则声明的场景集合是否覆盖当前场景
func matchScenes(declared []ValidateScene, current ValidateScene) bool {
	if len(declared) == 0 {
		return true
	}
	for _, scene := range declared {
		if scene == current {
			return true
		}
	}
	return false
}
