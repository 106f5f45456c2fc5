package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	langCodePattern  = regexp.MustCompile(`^[a-z]{2,3}(?:-[A-Za-z0-9]{2,8})*$`)
	symbolPattern    = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	routePathPattern = regexp.MustCompile(`^/[A-Za-z0-9/_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("lang_code", func(fl validator.FieldLevel) bool {
			return langCodePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("symbol", func(fl validator.FieldLevel) bool {
			return symbolPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("route_path", func(fl validator.FieldLevel) bool {
			return routePathPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-entry validation on the catalog.
func Validate(cat *Catalog) error {
	if cat == nil {
		return vitrineerrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(cat); err != nil {
		return convertValidationError(err)
	}

	slideIDs := make(map[int]struct{}, len(cat.Slides))
	for i, slide := range cat.Slides {
		if _, exists := slideIDs[slide.ID]; exists {
			return vitrineerrors.NewValidationError(fmt.Sprintf("slides[%d].id", i), fmt.Sprintf("duplicate slide id %d", slide.ID), nil)
		}
		slideIDs[slide.ID] = struct{}{}
	}

	codes := make(map[string]struct{}, len(cat.Languages))
	for i, lang := range cat.Languages {
		if _, exists := codes[lang.Code]; exists {
			return vitrineerrors.NewValidationError(fmt.Sprintf("languages[%d].code", i), fmt.Sprintf("duplicate language code %q", lang.Code), nil)
		}
		codes[lang.Code] = struct{}{}
	}

	paths := make(map[string]struct{}, len(cat.Navigation))
	for i, link := range cat.Navigation {
		if _, exists := paths[link.Path]; exists {
			return vitrineerrors.NewValidationError(fmt.Sprintf("navigation[%d].path", i), fmt.Sprintf("duplicate navigation path %q", link.Path), nil)
		}
		paths[link.Path] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return vitrineerrors.NewValidationError(field, msg, err)
	}

	return vitrineerrors.NewValidationError("catalog", err.Error(), err)
}

// yamlishFieldName turns "Catalog.Slides[1].ImageRef" into "slides[1].imageref".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
