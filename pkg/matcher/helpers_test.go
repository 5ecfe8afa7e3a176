package matcher

import (
	"katydid-common-matcher/pkg/validator"
)

// errorEntry 桩记录在验证时写入的错误
type errorEntry struct {
	attribute string
	message   string
}

// stubRecord 可控的被测记录，统计验证调用次数
type stubRecord struct {
	calls  int
	scenes []validator.ValidateScene
	add    []errorEntry
	fail   error
	errs   *validator.Errors
}

func newStubRecord(entries ...errorEntry) *stubRecord {
	return &stubRecord{add: entries, errs: validator.NewErrors()}
}

func (r *stubRecord) Valid() (bool, error) {
	return r.ValidOn(validator.SceneNone)
}

func (r *stubRecord) ValidOn(scene validator.ValidateScene) (bool, error) {
	r.calls++
	r.scenes = append(r.scenes, scene)
	r.errs.Clear()
	for _, entry := range r.add {
		r.errs.AddMessage(entry.attribute, entry.message)
	}
	if r.fail != nil {
		return false, r.fail
	}
	return !r.errs.HasErrors(), nil
}

func (r *stubRecord) Errors() validator.ErrorContainer {
	return r.errs
}

// plainRecord 只支持默认验证路径
type plainRecord struct {
	errs *validator.Errors
}

func (r *plainRecord) Valid() (bool, error) {
	return true, nil
}

func (r *plainRecord) Errors() validator.ErrorContainer {
	return r.errs
}

// Person 端到端测试模型
type Person struct {
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

func strPtr(s string) *string {
	return &s
}
