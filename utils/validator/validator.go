package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *gpvalidator.Validate
)

// ValidateStruct checks the struct's validate tags. The underlying validator
// is built once and is safe for concurrent use.
func ValidateStruct(s interface{}) error {
	once.Do(func() {
		v = gpvalidator.New()
	})
	return v.Struct(s)
}
