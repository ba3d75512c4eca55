package utils

import (
	"reflect"
	"strings"
)

// TrimStringFields trims surrounding whitespace from every exported string
// field of the struct pointed to by v. Password fields are left untouched.
func TrimStringFields(v interface{}) {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return
	}
	value = value.Elem()
	if value.Kind() != reflect.Struct {
		return
	}

	typ := value.Type()
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.String {
			continue
		}
		if strings.Contains(strings.ToLower(typ.Field(i).Name), "password") {
			continue
		}
		field.SetString(strings.TrimSpace(field.String()))
	}
}

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
