package pets

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const MaxAge = 200

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// ValidationError agrupa errores por campo (name, species, age).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

type formInput struct {
	Name    string `validate:"required,max=80"`
	Species string `validate:"required,max=40"`
	Age     string `validate:"required,number"`
}

// ParseForm valida los campos de texto del formulario y arma un Draft completo.
// La edad tiene que ser un entero entre 0 y MaxAge.
func ParseForm(name, species, age string) (Draft, error) {
	in := formInput{
		Name:    strings.TrimSpace(name),
		Species: strings.TrimSpace(species),
		Age:     strings.TrimSpace(age),
	}

	verr := &ValidationError{}
	if err := validatorInstance().Struct(in); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ves {
				verr.add(strings.ToLower(fe.Field()), messageFor(fe))
			}
		} else {
			return Draft{}, err
		}
	}

	var n int
	if _, bad := verr.Fields["age"]; !bad {
		v, err := strconv.Atoi(in.Age)
		if err != nil {
			verr.add("age", "must be a whole number")
		} else if err := checkAge(v); err != nil {
			verr.add("age", err.Error())
		}
		n = v
	}

	if len(verr.Fields) > 0 {
		return Draft{}, verr
	}
	return NewDraft(in.Name, in.Species, n), nil
}

// CheckDraft valida solo los campos presentes (PATCH parcial).
func CheckDraft(d Draft) error {
	verr := &ValidationError{}
	v := validatorInstance()

	if d.Name != nil {
		if err := v.Var(strings.TrimSpace(*d.Name), "required,max=80"); err != nil {
			verr.add("name", messageForVar(err))
		}
	}
	if d.Species != nil {
		if err := v.Var(strings.TrimSpace(*d.Species), "required,max=40"); err != nil {
			verr.add("species", messageForVar(err))
		}
	}
	if d.Age != nil {
		if err := checkAge(*d.Age); err != nil {
			verr.add("age", err.Error())
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

type ageError string

func (e ageError) Error() string { return string(e) }

func checkAge(age int) error {
	if err := validatorInstance().Var(age, "gte=0,lte="+strconv.Itoa(MaxAge)); err != nil {
		return ageError("must be between 0 and " + strconv.Itoa(MaxAge))
	}
	return nil
}

func messageForVar(err error) string {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		return messageFor(ves[0])
	}
	return err.Error()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "number":
		return "must be a whole number"
	default:
		return "failed validation for tag '" + fe.Tag() + "'"
	}
}
