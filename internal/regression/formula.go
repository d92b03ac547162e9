package regression

import (
	"fmt"
	"strings"

	"smokestat/internal/errors"
)

// Formula names the response and the single predictor of a simple linear
// model. An intercept is always fitted.
type Formula struct {
	Response  string
	Predictor string
}

// ParseFormula parses the "Response ~ Predictor" notation.
func ParseFormula(s string) (Formula, error) {
	parts := strings.Split(s, "~")
	if len(parts) != 2 {
		return Formula{}, errors.InvalidInput(fmt.Sprintf("formula %q must have the form 'response ~ predictor'", s))
	}

	f := Formula{
		Response:  strings.TrimSpace(parts[0]),
		Predictor: strings.TrimSpace(parts[1]),
	}
	if !isIdentifier(f.Response) || !isIdentifier(f.Predictor) {
		return Formula{}, errors.InvalidInput(fmt.Sprintf("formula %q must name exactly one response and one predictor", s))
	}
	return f, nil
}

// MustParseFormula is ParseFormula for literals.
func MustParseFormula(s string) Formula {
	f, err := ParseFormula(s)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Formula) String() string {
	return f.Response + " ~ " + f.Predictor
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
