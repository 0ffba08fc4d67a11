package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/pkg/apperrors"
)

type bindTarget struct {
	Student dto.PrimaryKey     `json:"student"`
	Name    dto.NullableString `json:"name" binding:"omitempty,max=5"`
	Email   dto.NullableString `json:"email" binding:"omitempty,email"`
	Start   dto.NullableString `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

func bind(t *testing.T, body string) (bindTarget, error) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var target bindTarget
	err := BindJSON(c, &target)
	return target, err
}

func bindFields(t *testing.T, body string) map[string][]string {
	t.Helper()
	_, err := bind(t, body)
	if err == nil {
		return nil
	}
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "unexpected error type %T", err)
	return verr.Fields
}

func TestBindJSON_FieldRules(t *testing.T) {
	assert.Nil(t, bindFields(t, `{"student": 1, "name": "abc", "start_date": "2019-11-07"}`))
	assert.Nil(t, bindFields(t, ``))
	assert.Nil(t, bindFields(t, `{}`))

	assert.Equal(t, map[string][]string{
		"name":       {"Ensure this field has no more than 5 characters."},
		"email":      {"Enter a valid email address."},
		"start_date": {"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."},
	}, bindFields(t, `{"student": 1, "name": "abcdef", "email": "nope", "start_date": "11/07/2019"}`))

	// rules see the trimmed value
	assert.Nil(t, bindFields(t, `{"name": "  abcde  ", "email": " bri1@gmail.com "}`))

	assert.Equal(t, map[string][]string{
		"name": {"Not a valid string."},
	}, bindFields(t, `{"name": ["a"]}`))
}

func TestBindJSON_NullAndAbsentAreDistinct(t *testing.T) {
	target, err := bind(t, `{"name": null}`)
	require.NoError(t, err)
	assert.True(t, target.Name.Set)
	assert.True(t, target.Name.Null)
	assert.False(t, target.Email.Set)

	target, err = bind(t, `{"student": null}`)
	require.NoError(t, err)
	assert.True(t, target.Student.Null)
}

func TestBindJSON_PrimaryKey(t *testing.T) {
	target, err := bind(t, `{"student": 7}`)
	require.NoError(t, err)
	assert.Equal(t, dto.NewPrimaryKey(7), target.Student)

	target, err = bind(t, `{"student": " 7 "}`)
	require.NoError(t, err)
	assert.Equal(t, int64(7), target.Student.Value)

	cases := map[string]string{
		`{"student": "abc"}`:   "str",
		`{"student": 1.5}`:     "float",
		`{"student": true}`:    "bool",
		`{"student": [1]}`:     "list",
		`{"student": {"a":1}}`: "dict",
	}
	for body, received := range cases {
		assert.Equal(t, map[string][]string{
			"student": {"Incorrect type. Expected pk value, received " + received + "."},
		}, bindFields(t, body), body)
	}
}

func TestBindJSON_MalformedBody(t *testing.T) {
	_, err := bind(t, `{"student": `)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.True(t, strings.HasPrefix(err.Error(), "JSON parse error - "))

	_, err = bind(t, `[1, 2]`)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, "Invalid data. Expected a dictionary, but got list.", err.Error())

	w := serveError(err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"non_field_errors":["Invalid data. Expected a dictionary, but got list."]}`, w.Body.String())
}
