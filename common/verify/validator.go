package verify

import (
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	zhtranslations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/pkg/errors"
)

type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

// user_id 会作为对象存储的路径前缀，只放行字母数字下划线中划线
var userIdTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidatorInstance 校验器实例，带本地化翻译
type ValidatorInstance struct {
	validate *validator.Validate
	trans    ut.Translator
}

// InitValidator 初始化校验器并注册自定义规则
func InitValidator(locale Locale) (*ValidatorInstance, error) {
	validate := validator.New()

	zhLocale := zh.New()
	enLocale := en.New()
	uni := ut.New(enLocale, zhLocale, enLocale)

	trans, ok := uni.GetTranslator(string(locale))
	if !ok {
		return nil, errors.Errorf("未找到翻译器: %s", locale)
	}

	var err error
	switch locale {
	case LocaleZH:
		err = zhtranslations.RegisterDefaultTranslations(validate, trans)
	default:
		err = entranslations.RegisterDefaultTranslations(validate, trans)
	}
	if err != nil {
		return nil, errors.Wrap(err, "注册翻译失败")
	}

	// useridtoken: 可作为存储路径前缀的用户标识
	if err := validate.RegisterValidation("useridtoken", func(fl validator.FieldLevel) bool {
		return userIdTokenPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, errors.Wrap(err, "注册 useridtoken 规则失败")
	}

	return &ValidatorInstance{
		validate: validate,
		trans:    trans,
	}, nil
}

// ValidateStruct 校验结构体，返回翻译后的首条错误信息
func (v *ValidatorInstance) ValidateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return v.translate(err)
	}
	return nil
}

// ValidateVar 按 tag 校验单个值
func (v *ValidatorInstance) ValidateVar(field any, tag string) error {
	if err := v.validate.Var(field, tag); err != nil {
		return v.translate(err)
	}
	return nil
}

func (v *ValidatorInstance) translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fe.Translate(v.trans))
	}
	return errors.New(strings.Join(messages, "; "))
}
