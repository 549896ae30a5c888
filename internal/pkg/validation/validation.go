package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// One shared rule set for every form in the app. The same tagged structs are
// bound by the handlers, so the rules cannot drift between forms.
var (
	validate *validator.Validate
	once     sync.Once
)

func get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Struct applies the shared rule set to a tagged payload
func Struct(s interface{}) error {
	return get().Struct(s)
}

// HasRuleViolation reports whether err came from the rule set, as opposed to
// an invalid value passed to the validator itself
func HasRuleViolation(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(validator.ValidationErrors)
	return ok
}
