package newsportal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsBadWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"clean text", "Хорошая новость", false},
		{"first bad word", "он редиска, это плохо", true},
		{"second bad word inside text", "Какой-то текст, негодяй, еще текст", true},
		{"bad word as substring", "редисками", true},
		{"different case is not matched", "РЕДИСКА", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsBadWords(tt.text))
		})
	}
}

func TestCommentForm_Validate(t *testing.T) {
	t.Run("valid text is trimmed", func(t *testing.T) {
		form := CommentForm{Text: "  Новый комментарий \n"}
		require.NoError(t, form.Validate())
		assert.Equal(t, "Новый комментарий", form.Text)
	})

	for _, word := range BadWords {
		t.Run("bad word "+word, func(t *testing.T) {
			form := CommentForm{Text: "Какой-то текст, " + word + ", еще текст"}
			err := form.Validate()

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Fields["text"], Warning)
		})
	}

	t.Run("empty text is required", func(t *testing.T) {
		form := CommentForm{Text: "   "}
		err := form.Validate()

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, []string{msgRequired}, ve.Fields["text"])
	})
}

func TestSignupForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		form      SignupForm
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing username",
			form:      SignupForm{Password1: "password123", Password2: "password123"},
			wantField: "username",
			wantMsg:   msgRequired,
		},
		{
			name:      "too long username",
			form:      SignupForm{Username: strings.Repeat("я", 151), Password1: "password123", Password2: "password123"},
			wantField: "username",
			wantMsg:   "Убедитесь, что это значение содержит не более 150 символов.",
		},
		{
			name:      "short password",
			form:      SignupForm{Username: "reader", Password1: "short", Password2: "short"},
			wantField: "password1",
			wantMsg:   "Убедитесь, что это значение содержит не менее 8 символов.",
		},
		{
			name:      "passwords differ",
			form:      SignupForm{Username: "reader", Password1: "password123", Password2: "password321"},
			wantField: "password2",
			wantMsg:   msgPasswordsDiffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Contains(t, ve.Fields[tt.wantField], tt.wantMsg)
		})
	}

	t.Run("valid", func(t *testing.T) {
		form := SignupForm{Username: " reader ", Password1: "password123", Password2: "password123"}
		require.NoError(t, form.Validate())
		assert.Equal(t, "reader", form.Username)
	})
}

func TestValidationError_Error(t *testing.T) {
	ve := newValidationError()
	ve.Add("text", Warning)
	ve.Add("author", msgRequired)
	ve.NonField = append(ve.NonField, msgBadCredentials)

	assert.Equal(t,
		"invalid form: author: Обязательное поле., text: Не ругайтесь!, "+msgBadCredentials,
		ve.Error(),
	)
	assert.True(t, ve.Has("text"))
	assert.False(t, ve.Has("username"))
}
