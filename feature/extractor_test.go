package feature

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract_LowercasesAndSplits(t *testing.T) {
	require.Equal(t, []string{"cheap", "meds", "now"}, Extract("Cheap MEDS now"))
}

func TestExtract_LengthWindowIsStrict(t *testing.T) {
	e := NewExtractor(WithLengthBounds(2, 5))

	// "ab" has length 2 == min, "abcde" length 5 == max: both dropped.
	require.Equal(t, []string{"abc", "abcd"}, e.Extract("a ab abc abcd abcde"))
}

func TestExtract_DefaultBounds(t *testing.T) {
	tokens := Extract("to be or not longer")
	// Two-letter words fall on the lower bound and are dropped.
	require.Equal(t, []string{"not", "longer"}, tokens)

	long := "aaaaaaaaaaaaaaaaaaaa" // 20 runes, falls on the upper bound
	require.Empty(t, Extract(long))
}

func TestExtract_KeepsDuplicates(t *testing.T) {
	require.Equal(t, []string{"buy", "buy", "buy"}, Extract("buy buy buy"))
}

func TestExtract_EmptyInput(t *testing.T) {
	require.Empty(t, Extract(""))
	require.Empty(t, Extract("   \n\t  "))
}

func TestExtract_WithSanitizer(t *testing.T) {
	e := NewExtractor(WithSanitizer(StripPunctuation()))

	require.Equal(t, []string{"hello", "friend"}, e.Extract("Hello, friend!!!"))
}
