package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/university/internal/app/models/dto"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/validation"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		v.RegisterCustomTypeFunc(nullableStringValue, dto.NullableString{})
	}
}

// nullableStringValue lets binding rules run on the trimmed value of a
// NullableString; absent and null fields are left to the services.
func nullableStringValue(field reflect.Value) any {
	if n, ok := field.Interface().(dto.NullableString); ok {
		return n.ValidationValue()
	}
	return nil
}

// jsonFieldName reports fields under their JSON name
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// BindJSON decodes and validates the request body into obj. An empty body is
// treated as an empty object so required fields are reported by name.
func BindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}
	if err != nil {
		return TranslateBindingError(err)
	}
	return nil
}

// TranslateBindingError converts validator and field type errors into a
// ValidationError. Bodies that are not a JSON object become a bad request.
func TranslateBindingError(err error) error {
	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &fieldErrs):
		verr := apperrors.NewValidationError()
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), formatValidationError(fe))
		}
		return verr
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return apperrors.NewBadRequestError("Invalid data. Expected a dictionary, but got " + jsonTypeName(typeErr.Value) + ".")
		}
		return apperrors.NewFieldError(typeErr.Field, typeMismatchMessage(typeErr))
	default:
		return apperrors.NewBadRequestError("JSON parse error - " + err.Error())
	}
}

// formatValidationError creates the client message for a failed rule
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return validation.MsgRequired
	case "max":
		n, _ := strconv.Atoi(e.Param())
		return validation.MaxLengthMessage(n)
	case "email":
		return validation.MsgInvalidEmail
	case "datetime":
		return validation.MsgInvalidDate
	default:
		return "Invalid value."
	}
}

func typeMismatchMessage(e *json.UnmarshalTypeError) string {
	kind := e.Type.Kind()
	if kind == reflect.Ptr {
		kind = e.Type.Elem().Kind()
	}
	switch kind {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return validation.IncorrectTypeMessage(jsonTypeName(e.Value))
	case reflect.String:
		return validation.MsgNotString
	default:
		return "Invalid value."
	}
}

// jsonTypeName names a JSON value kind the way clients see it
func jsonTypeName(value string) string {
	switch {
	case value == "string":
		return "str"
	case value == "array":
		return "list"
	case value == "object":
		return "dict"
	case strings.HasPrefix(value, "number"):
		return "float"
	default:
		return value
	}
}
