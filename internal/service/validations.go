package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// "HH:MM", 24-hour clock
		validate.RegisterValidation("time_of_day", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseTimeOfDay(fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseWeekday(fl.Field().String())
			return err == nil
		})
		// Names can't be only whitespace
		validate.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.Join(errorvalues.ErrValidation, err)
}
