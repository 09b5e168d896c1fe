package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *ValidatorInstance {
	t.Helper()
	v, err := InitValidator(LocaleZH)
	require.NoError(t, err)
	return v
}

func TestUserIdToken(t *testing.T) {
	v := newValidator(t)

	valid := []string{
		"anonymous",
		"user_001",
		"User-001",
		"a",
		"0123456789",
	}
	for _, id := range valid {
		assert.NoError(t, v.ValidateVar(id, "useridtoken"), id)
	}

	// user_id 会成为存储路径前缀，路径穿越类输入必须拒绝
	invalid := []string{
		"",
		"../etc",
		"a/b",
		"a..b/",
		"用户一",
		"user 1",
		"user\x00",
		string(make([]byte, 65)),
	}
	for _, id := range invalid {
		assert.Error(t, v.ValidateVar(id, "useridtoken"), "%q 应被拒绝", id)
	}
}

func TestValidateStructTranslated(t *testing.T) {
	v := newValidator(t)

	type form struct {
		UserId string `validate:"required,useridtoken"`
	}

	assert.NoError(t, v.ValidateStruct(form{UserId: "u1"}))

	err := v.ValidateStruct(form{})
	require.Error(t, err)
	// 中文翻译生效
	assert.Contains(t, err.Error(), "必填")
}

func TestInitValidatorUnknownLocale(t *testing.T) {
	_, err := InitValidator(Locale("fr"))
	assert.Error(t, err)
}
