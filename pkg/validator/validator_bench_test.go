package validator

import (
	"testing"
)

// BenchmarkValidate_Scene 场景过滤后的规则执行
func BenchmarkValidate_Scene(b *testing.B) {
	v := New()
	user := &TestUser{
		Name:                 strPtr("bob"),
		Email:                "bob@example.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
		Age:                  25,
	}
	rules := rulesFromScenes(user.RuleValidation())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Validate(user, SceneCreate, rules)
	}
}

// BenchmarkSubject_SetAttributeAndValid 赋值后重新验证
func BenchmarkSubject_SetAttributeAndValid(b *testing.B) {
	subject := NewSubject(&TestUser{Name: strPtr("bob")})
	values := []any{nil, "alice"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = subject.SetAttribute("name", values[i%2])
		_, _ = subject.Valid()
	}
}

// BenchmarkErrors_Error 错误集合格式化
func BenchmarkErrors_Error(b *testing.B) {
	errs := NewErrors()
	for _, attribute := range []string{"name", "email", "password", "age"} {
		errs.AddMessage(attribute, "is invalid")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = errs.Error()
	}
}
