package newsportal

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BadWords is the denylist checked against comment text.
var BadWords = []string{
	"редиска",
	"негодяй",
}

// Warning is the message attached to the text field when BadWords match.
const Warning = "Не ругайтесь!"

const (
	msgRequired        = "Обязательное поле."
	msgMaxLength       = "Убедитесь, что это значение содержит не более %s символов."
	msgMinLength       = "Убедитесь, что это значение содержит не менее %s символов."
	msgPasswordsDiffer = "Введенные пароли не совпадают."
	msgUsernameTaken   = "Пользователь с таким именем уже существует."
	msgBadCredentials  = "Пожалуйста, введите правильные имя пользователя и пароль."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	if err := v.RegisterValidation("nobadwords", func(fl validator.FieldLevel) bool {
		return !ContainsBadWords(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ContainsBadWords reports whether any entry of BadWords occurs in text.
// The match is a case-sensitive substring search.
func ContainsBadWords(text string) bool {
	for _, word := range BadWords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

type CommentForm struct {
	Text string `form:"text" validate:"required,nobadwords"`
}

// Validate trims the text and checks it against the denylist.
func (f *CommentForm) Validate() error {
	f.Text = strings.TrimSpace(f.Text)
	return validateForm(f)
}

type SignupForm struct {
	Username  string `form:"username" validate:"required,max=150"`
	Password1 string `form:"password1" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

func (f *SignupForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	return validateForm(f)
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (f *LoginForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	return validateForm(f)
}

func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	ve := newValidationError()
	for _, fe := range verrs {
		ve.Add(fe.Field(), fieldMessage(fe))
	}

	return ve
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "nobadwords":
		return Warning
	case "max":
		return fmt.Sprintf(msgMaxLength, fe.Param())
	case "min":
		return fmt.Sprintf(msgMinLength, fe.Param())
	case "eqfield":
		return msgPasswordsDiffer
	default:
		return fe.Error()
	}
}
