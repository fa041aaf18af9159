package gen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

var (
	// ErrEmptyTypeList reports a chain spec with no payload types.
	ErrEmptyTypeList = errors.New("chain spec needs at least one type")

	// ErrBadAliasName reports an alias name that is not a Go identifier.
	ErrBadAliasName = errors.New("alias name is not a valid Go identifier")
)

// Spec describes one chain type alias to generate.
type Spec struct {
	// Name of the generated alias, e.g. "DrawTargets".
	Name string `mapstructure:"name"`

	// Types are the payload type expressions, listed in append order:
	// the first entry is appended first and ends up innermost.
	Types []string `mapstructure:"types"`
}

// Expand returns the nested chain type expression for payload types listed
// in append order. The list is reversed and folded right to left: the last
// entry after reversal becomes the Terminal payload, and every earlier
// entry wraps the accumulated expression in a Link. A single-type list
// degenerates to a plain Terminal.
func Expand(types []string) (string, error) {
	if len(types) == 0 {
		return "", ErrEmptyTypeList
	}

	reversed := make([]string, 0, len(types))
	for i := len(types) - 1; i >= 0; i-- {
		typ := strings.TrimSpace(types[i])
		if typ == "" {
			return "", fmt.Errorf("type at position %d is empty", i)
		}
		reversed = append(reversed, typ)
	}

	expr := fmt.Sprintf("chain.Terminal[%s]", reversed[len(reversed)-1])
	for i := len(reversed) - 2; i >= 0; i-- {
		expr = fmt.Sprintf("chain.Link[%s, %s]", reversed[i], expr)
	}

	return expr, nil
}

// expand validates the alias name and returns the spec's type expression.
func (s Spec) expand() (string, error) {
	if !token.IsIdentifier(s.Name) {
		return "", fmt.Errorf("%w: %q", ErrBadAliasName, s.Name)
	}

	expr, err := Expand(s.Types)
	if err != nil {
		return "", fmt.Errorf("alias %s: %w", s.Name, err)
	}

	return expr, nil
}
