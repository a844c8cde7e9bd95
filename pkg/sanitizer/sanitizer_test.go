package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  Garden cleanup  ", want: "Garden cleanup"},
		{name: "inner runs", input: "Garden    cleanup", want: "Garden cleanup"},
		{name: "tabs and newlines", input: "Garden\t\ncleanup", want: "Garden cleanup"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: " \t\n ", want: ""},
		{name: "unicode kept", input: " Café & Spa™ ", want: "Café & Spa™"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SingleLine(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, SingleLine(got), "idempotent")
		})
	}
}

func TestMultiLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "keeps line breaks", input: "Line one\nLine two", want: "Line one\nLine two"},
		{name: "folds crlf", input: "a\r\nb", want: "a\nb"},
		{name: "drops trailing spaces", input: "  a  \n b \t\n", want: "a\n b"},
		{name: "blank", input: " \r\n ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MultiLine(tt.input))
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "lawn care", Label("  Lawn   Care "))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "us local format", input: "(818) 555-0123", want: "+18185550123"},
		{name: "us with country code", input: "+1 323 555 0456", want: "+13235550456"},
		{name: "international", input: "+972 54 123 4567", want: "+972541234567"},
		{name: "surrounding spaces", input: "  +13105550789  ", want: "+13105550789"},
		{name: "letters", input: "call me maybe", want: ""},
		{name: "too short", input: "+1", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestDialURI(t *testing.T) {
	assert.Equal(t, "tel:+18185550123", DialURI("(818) 555-0123"))
	assert.Equal(t, "", DialURI("n/a"))
}

func TestNormalizeInviteLink(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare host", input: "HandyHub.app/invite/AbC123", want: "https://handyhub.app/invite/AbC123"},
		{name: "http upgraded", input: "http://handyhub.app/invite/x/", want: "https://handyhub.app/invite/x"},
		{name: "https kept", input: "https://handyhub.app/i/9?ref=sms", want: "https://handyhub.app/i/9?ref=sms"},
		{name: "other scheme", input: "ftp://handyhub.app/x", want: ""},
		{name: "no dot in host", input: "localhost/invite", want: ""},
		{name: "free text", input: "my friend bob", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeInviteLink(tt.input))
		})
	}
}

func TestNormalizeStringSlice(t *testing.T) {
	got := NormalizeStringSlice([]string{" Lawn Care", "lawn care", "", "Hedge  Trimming"}, Label)
	assert.Equal(t, []string{"lawn care", "hedge trimming"}, got)
	assert.Equal(t, []string{}, NormalizeStringSlice(nil, Label))
}
