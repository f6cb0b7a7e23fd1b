package submission

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
)

// Field names a form input
type Field string

const (
	FieldTitle         Field = "title"
	FieldCategory      Field = "category"
	FieldDurationHours Field = "durationHours"
)

// AllFields lists the form inputs in display order
var AllFields = []Field{FieldTitle, FieldCategory, FieldDurationHours}

// ErrorKind identifies which rule a field value broke
type ErrorKind int

const (
	Required ErrorKind = iota + 1
	MinLength
	Minimum
)

func (k ErrorKind) String() string {
	switch k {
	case Required:
		return "required"
	case MinLength:
		return "minLength"
	case Minimum:
		return "minimum"
	default:
		return fmt.Sprintf("errorKind(%d)", int(k))
	}
}

const (
	MinTitleLength = 3
	MinDuration    = 1
)

// courseForm mirrors the raw inputs in the shape the rules are declared on.
// DurationHours is nil when the input is empty or not a number.
type courseForm struct {
	Title         string `json:"title" validate:"required,min=3"`
	Category      string `json:"category" validate:"required"`
	DurationHours *int   `json:"durationHours" validate:"required,min=1"`
}

var validate = newValidator()

func newValidator() *govalidator.Validate {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseDuration returns nil for input that does not hold a whole number
func parseDuration(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// Validate runs the field rules over the raw inputs. Each failing field maps
// to the first rule it broke; a nil map means the form is valid.
func Validate(f Fields) map[Field][]ErrorKind {
	err := validate.Struct(courseForm{
		Title:         f.Title,
		Category:      f.Category,
		DurationHours: parseDuration(f.DurationHours),
	})
	if err == nil {
		return nil
	}

	var ve govalidator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	out := make(map[Field][]ErrorKind, len(ve))
	for _, fe := range ve {
		field := Field(fe.Field())
		out[field] = append(out[field], kindOf(fe))
	}
	return out
}

func kindOf(fe govalidator.FieldError) ErrorKind {
	switch fe.Tag() {
	case "required":
		return Required
	case "min":
		if fe.Kind() == reflect.String {
			return MinLength
		}
		return Minimum
	}
	return Required
}

// Messages renders ErrorKinds as localized, user-facing text
type Messages struct {
	trans ut.Translator
}

type labels map[Field]string

var fieldLabels = map[string]labels{
	"en": {
		FieldTitle:         "Title",
		FieldCategory:      "Category",
		FieldDurationHours: "Duration (hours)",
	},
	"pt_BR": {
		FieldTitle:         "Título",
		FieldCategory:      "Categoria",
		FieldDurationHours: "Carga horária",
	},
}

var kindTexts = map[string]map[ErrorKind]string{
	"en": {
		Required:  "{0} is required.",
		MinLength: "{0} must be at least {1} characters.",
		Minimum:   "{0} must be at least {1}.",
	},
	"pt_BR": {
		Required:  "{0} é obrigatório.",
		MinLength: "{0} deve ter pelo menos {1} caracteres.",
		Minimum:   "{0} deve ser no mínimo {1}.",
	},
}

var universal = newUniversal()

func newUniversal() *ut.UniversalTranslator {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, pt_BR.New())

	for locale, texts := range kindTexts {
		trans, _ := uni.GetTranslator(locale)
		for kind, text := range texts {
			if err := trans.Add(kind, text, false); err != nil {
				panic(fmt.Sprintf("register %s translation for %s: %v", locale, kind, err))
			}
		}
		for field, label := range fieldLabels[locale] {
			if err := trans.Add(field, label, false); err != nil {
				panic(fmt.Sprintf("register %s label for %s: %v", locale, field, err))
			}
		}
	}
	return uni
}

// NewMessages returns messages for locale ("en", "pt_BR"); unknown locales fall back to English
func NewMessages(locale string) *Messages {
	trans, found := universal.GetTranslator(locale)
	if !found {
		trans, _ = universal.GetTranslator("en")
	}
	return &Messages{trans: trans}
}

// Locale reports the locale the messages resolve to
func (m *Messages) Locale() string {
	return m.trans.Locale()
}

// Label returns the display name of a field
func (m *Messages) Label(f Field) string {
	label, err := m.trans.T(f)
	if err != nil {
		return string(f)
	}
	return label
}

// Text renders kind for field, e.g. "Title must be at least 3 characters."
func (m *Messages) Text(f Field, kind ErrorKind) string {
	params := []string{m.Label(f)}
	switch kind {
	case MinLength:
		params = append(params, strconv.Itoa(MinTitleLength))
	case Minimum:
		params = append(params, strconv.Itoa(MinDuration))
	}

	text, err := m.trans.T(kind, params...)
	if err != nil {
		return kind.String()
	}
	return text
}
