package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/go-playground/validator/v10"
)

// validate is shared by all services; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("datekey", isDateKey); err != nil {
		panic(fmt.Sprintf("registering datekey validation: %v", err))
	}
}

func isDateKey(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

// validateStruct checks v against its validate tags and wraps failures in
// sentinel, naming each offending field.
func validateStruct(v any, sentinel error) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(msgs, "; "))
}
