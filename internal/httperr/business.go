package httperr

import (
	"errors"
	"fmt"
)

// BusinessError is a rule violation shown to the user. Args fill the verbs of
// the code's registered message.
type BusinessError struct {
	Code string
	Args []any
}

func (e BusinessError) Error() string {
	return e.Code
}

// Is matches any BusinessError with the same code, whatever its args.
func (e BusinessError) Is(target error) bool {
	t, ok := target.(BusinessError)
	return ok && t.Code == e.Code
}

// Message renders the user-facing text.
func (e BusinessError) Message() string {
	if len(e.Args) == 0 {
		return Message(e.Code)
	}
	return fmt.Sprintf(Message(e.Code), e.Args...)
}

func ErrBusiness(code string, args ...any) error {
	return BusinessError{Code: code, Args: args}
}

// AsBusiness extracts the business error, if any.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}
