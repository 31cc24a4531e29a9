package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("hero.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "hero.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: hero.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("hero.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: hero.yaml: no such file", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("sequences[1].steps[0].after", "references unknown step", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "sequences[1].steps[0].after", validationErr.Field)
	require.Contains(t, validationErr.Message, "references unknown step")
	require.Contains(t, err.Error(), "validation error: sequences[1]")
}

func TestNotFoundErrorNamesEntry(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("element", "hero-title")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "element", notFound.Kind)
	require.Equal(t, `element "hero-title" not found`, err.Error())
}
