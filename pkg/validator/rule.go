package validator

import "sort"

// Rule 单条字段验证规则
// Tag 遵循 go-playground/validator 的标签语法（如 "required,min=3"）
type Rule struct {
	// Field 字段名（结构体字段名或 json 名）
	Field string
	// Tag 验证标签
	Tag string
	// Scenes 规则生效的场景，为空表示所有场景
	Scenes []ValidateScene
	// StrictMode 严格模式：验证失败时返回 StrictValidationError 而不是记录消息
	StrictMode bool
	// Message 自定义错误消息，为空时使用消息目录
	Message string
}

// NewRule 创建字段验证规则
func NewRule(field, tag string) *Rule {
	return &Rule{Field: field, Tag: tag}
}

// On 限定规则生效的场景
func (r *Rule) On(scenes ...ValidateScene) *Rule {
	r.Scenes = append(r.Scenes, scenes...)
	return r
}

// Strict 将规则设置为严格模式
func (r *Rule) Strict() *Rule {
	r.StrictMode = true
	return r
}

// WithMessage 设置自定义错误消息
func (r *Rule) WithMessage(message string) *Rule {
	r.Message = message
	return r
}

// AppliesTo 规则是否在指定场景下生效
func (r *Rule) AppliesTo(scene ValidateScene) bool {
	return matchScenes(r.Scenes, scene)
}

// RuleValidator 规则验证器接口，为模型提供场景化的字段规则
// 返回格式：map[场景][字段名]规则字符串，SceneNone 下的规则在所有场景生效
//
// 示例：
//
//	func (u *User) RuleValidation() map[ValidateScene]map[string]string {
//	    return map[ValidateScene]map[string]string{
//	        SceneNone: {"name": "required"},
//	        "create":  {"email": "required,email"},
//	    }
//	}
type RuleValidator interface {
	RuleValidation() map[ValidateScene]map[string]string
}

// CustomValidator 自定义验证器接口，用于跨字段和业务逻辑验证
// 所有错误都通过 report 报告，消息按 tag 从消息目录解析
type CustomValidator interface {
	CustomValidation(scene ValidateScene, report FuncReportError)
}

// FuncReportError 错误报告函数类型
//
// 示例：
//
//	func (u *User) CustomValidation(scene ValidateScene, report FuncReportError) {
//	    if u.Password != u.ConfirmPassword {
//	        report("confirm_password", "confirmation", "")
//	    }
//	}
type FuncReportError func(attribute, tag, param string)

// rulesFromScenes 将 RuleValidator 的场景规则映射转换为规则列表
// 字段按名称排序，保证错误顺序稳定
func rulesFromScenes(scenes map[ValidateScene]map[string]string) []*Rule {
	if len(scenes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(scenes))
	for scene := range scenes {
		keys = append(keys, string(scene))
	}
	sort.Strings(keys)

	var rules []*Rule
	for _, key := range keys {
		scene := ValidateScene(key)
		fields := scenes[scene]
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			tag := fields[name]
			if tag == "" {
				continue
			}
			rule := NewRule(name, tag)
			if !scene.IsNone() {
				rule.On(scene)
			}
			rules = append(rules, rule)
		}
	}
	return rules
}
