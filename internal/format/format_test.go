package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDelimiter(t *testing.T) {
	f := New()
	assert.Equal(t, ", ", f.Delimiter())
	assert.Equal(t, "Red, Blue", f.Format([]string{"Red", "Blue"}))
}

func TestSetDelimiterFlags(t *testing.T) {
	f := New()

	f.SetDelimiter(";", false, false)
	assert.Equal(t, "a;b", f.Format([]string{"a", "b"}))

	f.SetDelimiter("|", true, true)
	assert.Equal(t, "a | b", f.Format([]string{"a", "b"}))

	f.SetDelimiter("-", true, false)
	assert.Equal(t, " -", f.Delimiter())
}

func TestDelimiterWithEdgeWhitespaceIsVerbatim(t *testing.T) {
	f := New()
	f.SetDelimiter(" / ", true, true)
	assert.Equal(t, " / ", f.Delimiter(), "flags are ignored when the delimiter carries its own spacing")
}

func TestPlaceholder(t *testing.T) {
	f := New()
	assert.Equal(t, "", f.Format(nil), "default placeholder is empty")

	f.SetPlaceholder("pick some")
	assert.Equal(t, "pick some", f.Format(nil))
	assert.Equal(t, "pick some", f.Format([]string{}))
	assert.Equal(t, "x", f.Format([]string{"x"}), "placeholder only applies to an empty selection")
}

func TestCountSummary(t *testing.T) {
	f := New()
	require.NoError(t, f.SetCountSummary(3, ""))
	assert.True(t, f.Summarizing())

	assert.Equal(t, "a, b", f.Format([]string{"a", "b"}), "below threshold joins normally")
	assert.Equal(t, "3 selected", f.Format([]string{"a", "b", "c"}))
	assert.Equal(t, "5 selected", f.Format([]string{"a", "b", "c", "d", "e"}))
}

func TestCountSummaryZeroThresholdAlwaysCounts(t *testing.T) {
	f := New()
	require.NoError(t, f.SetCountSummary(0, "{count} items"))
	assert.Equal(t, "1 items", f.Format([]string{"a"}))
}

func TestCountSummaryFormatValidation(t *testing.T) {
	f := New()
	err := f.SetCountSummary(2, "no placeholder here")
	require.Error(t, err)
	assert.False(t, f.Summarizing(), "invalid format leaves the mode untouched")
}

func TestLeadingSummary(t *testing.T) {
	f := New()
	require.NoError(t, f.SetLeadingSummary(1, ""))

	assert.Equal(t, "a", f.Format([]string{"a"}), "at or below threshold joins normally")
	assert.Equal(t, "a … +3 more", f.Format([]string{"a", "b", "c", "d"}))

	require.NoError(t, f.SetLeadingSummary(2, ""))
	assert.Equal(t, "a, b … +2 more", f.Format([]string{"a", "b", "c", "d"}))
}

func TestLeadingSummaryCustomFormat(t *testing.T) {
	f := New()
	require.NoError(t, f.SetLeadingSummary(1, "{shown} (+{more})"))
	assert.Equal(t, "a (+2)", f.Format([]string{"a", "b", "c"}))
}

func TestLeadingSummaryValidation(t *testing.T) {
	f := New()
	require.Error(t, f.SetLeadingSummary(-1, ""))
	require.Error(t, f.SetLeadingSummary(1, "missing the verb"))
	assert.False(t, f.Summarizing())
}

func TestClearSummary(t *testing.T) {
	f := New()
	require.NoError(t, f.SetCountSummary(1, ""))
	f.ClearSummary()
	assert.False(t, f.Summarizing())
	assert.Equal(t, "a, b, c", f.Format([]string{"a", "b", "c"}))
}
