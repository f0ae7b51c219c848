package services

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrConflict — userName уже занят другим автором.
	ErrConflict = errors.New("username already taken")
	// ErrBadRequest — id в пути и id в теле не совпадают (или id в теле нет).
	ErrBadRequest = errors.New("request path id and request body id values must match")
	// ErrNotFound — записи с таким id нет.
	ErrNotFound = errors.New("not found")
)

// ValidationError — отсутствует обязательное поле или не найден связанный автор.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func missingField(name string) *ValidationError {
	return &ValidationError{
		Field:   name,
		Message: fmt.Sprintf("Missing `%s` in request body", name),
	}
}

type requiredField struct {
	name  string
	value *string
}

// requireFields проверяет наличие полей строго в переданном порядке
// и возвращает ошибку по первому отсутствующему.
func requireFields(fields ...requiredField) error {
	for _, f := range fields {
		if err := validation.Validate(f.value, validation.NotNil); err != nil {
			return missingField(f.name)
		}
	}
	return nil
}
