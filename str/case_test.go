package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToScreamingSnakeCase(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "camelCase", input: "camelCase", expected: "CAMEL_CASE"},
		{name: "PascalCase", input: "PascalCase", expected: "PASCAL_CASE"},
		{name: "lower case with underscores", input: "lower_case_string", expected: "LOWER_CASE_STRING"},
		{name: "kebab-case", input: "kebab-case-string", expected: "KEBAB_CASE_STRING"},
		{name: "numbers", input: "version2Release", expected: "VERSION_2_RELEASE"},
		{name: "consecutive upper case letters", input: "XMLHttpRequest", expected: "XML_HTTP_REQUEST"},
		{name: "acronym", input: "ID", expected: "ID"},
		{name: "trailing acronym", input: "DatabaseURL", expected: "DATABASE_URL"},
		{name: "separator before upper case letter", input: "foo_Bar", expected: "FOO_BAR"},
		{name: "leading separator", input: "-foo", expected: "FOO"},
		{name: "single character", input: "a", expected: "A"},
		{name: "empty string", input: "", expected: ""},
		{name: "only spaces", input: "   ", expected: ""},
		{name: "surrounding whitespace", input: "  camelCase  ", expected: "CAMEL_CASE"},
		{name: "leading number", input: "2ndVersion", expected: "2ND_VERSION"},
		{name: "id suffix", input: "customerId", expected: "CUSTOMER_ID"},
		{name: "acronym with number", input: "API2Response", expected: "API_2_RESPONSE"},
	}

	for _, tc := range testCases {
		t.Run("it should convert "+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToScreamingSnakeCase(tc.input))
		})
	}
}

func TestToEnvKey(t *testing.T) {
	t.Run("it should prefix the key", func(t *testing.T) {
		assert.Equal(t, "APP_DATABASE_MAX_CONNS", ToEnvKey("app", "Database", "maxConns"))
	})

	t.Run("it should work without prefix", func(t *testing.T) {
		assert.Equal(t, "DATABASE_URL", ToEnvKey("", "Database", "Url"))
	})

	t.Run("it should keep acronyms together", func(t *testing.T) {
		assert.Equal(t, "APP_DATABASE_URL", ToEnvKey("app", "Database", "URL"))
	})
}
