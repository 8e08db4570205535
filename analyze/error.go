package analyze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRedefined        = errors.New("symbol redefined")
	ErrUndeclaredFunc   = errors.New("undeclared function")
	ErrUndeclaredVar    = errors.New("undeclared variable")
	ErrVoidVariable     = errors.New("void-type variable")
	ErrIndexNotInt      = errors.New("array index is not an integer")
	ErrIndexNotArray    = errors.New("indexing a non-int[] variable")
	ErrInvalidCall      = errors.New("invalid function call")
	ErrInvalidReturn    = errors.New("invalid return")
	ErrInvalidAssign    = errors.New("invalid assignment")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidCondition = errors.New("invalid condition")
)

// SemanticError is a soft fault found by either pass. Its message is the
// line written to the diagnostic listing.
type SemanticError struct {
	Fn      string
	Lineno  int
	Name    string
	Prior   []int
	Wrapped error
}

func (e *SemanticError) Error() string {
	switch e.Wrapped {
	case ErrRedefined:
		prior := make([]string, len(e.Prior))
		for i, l := range e.Prior {
			prior[i] = fmt.Sprintf("%d", l)
		}
		return fmt.Sprintf("Symbol \"%s\" is redefined at line %d (already defined at line %s)",
			e.Name, e.Lineno, strings.Join(prior, " "))
	case ErrUndeclaredFunc:
		return fmt.Sprintf("undeclared function \"%s\" is called at line %d", e.Name, e.Lineno)
	case ErrUndeclaredVar:
		return fmt.Sprintf("undeclared variable \"%s\" is used at line %d", e.Name, e.Lineno)
	case ErrVoidVariable:
		return fmt.Sprintf("The void-type variable is declared at line %d (name : \"%s\")", e.Lineno, e.Name)
	case ErrIndexNotInt:
		return fmt.Sprintf("Invalid array indexing at line %d (name : \"%s\"). indicies should be integer",
			e.Lineno, e.Name)
	case ErrIndexNotArray:
		return fmt.Sprintf("Invalid array indexing at line %d (name : \"%s\"). indexing can only allowed for int[] variables",
			e.Lineno, e.Name)
	case ErrInvalidCall:
		return fmt.Sprintf("Invalid function call at line %d (name : \"%s\")", e.Lineno, e.Name)
	case ErrInvalidReturn:
		return fmt.Sprintf("Invalid return at line %d", e.Lineno)
	case ErrInvalidAssign:
		return fmt.Sprintf("invalid assignment at line %d", e.Lineno)
	case ErrInvalidOperation:
		return fmt.Sprintf("invalid operation at line %d", e.Lineno)
	case ErrInvalidCondition:
		return fmt.Sprintf("invalid condition at line %d", e.Lineno)
	default:
		panic(fmt.Sprintf("unknown semantic error: %v", e.Wrapped))
	}
}

func (e *SemanticError) Unwrap() error {
	return e.Wrapped
}

// Where gives the file and line of the fault.
func (e *SemanticError) Where() string {
	return fmt.Sprintf("%s:%d", e.Fn, e.Lineno)
}
