package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dto-pump/internal/schema"
)

func TestAnalyzeMeaning(t *testing.T) {
	tests := []struct {
		name string
		hint string
		want schema.FieldType
	}{
		{"userEmail", "", schema.TypeEmail},
		{"tel_no", "", schema.TypePhone},
		{"mobilePhone", "", schema.TypePhone},
		{"homepage_url", "", schema.TypeURL},
		{"zip", "", schema.TypeZipCode},
		{"companyName", "", schema.TypeCompany},
		{"firstName", "", schema.TypeFirstName},
		{"fname", "", schema.TypeFirstName},
		{"lname", "", schema.TypeLastName},
		{"surname", "", schema.TypeLastName},
		{"full-name", "", schema.TypeFullName},
		{"addr", "", schema.TypeAddress},
		{"city", "", schema.TypeCity},
		{"country", "", schema.TypeCountry},
		{"description", "", schema.TypeLorem},
		{"username", "", ""},
		{"user_name", "", ""},
		{"id", "", ""},
		{"memo", "연락처", schema.TypePhone},
		{"memo", "고객 이름", schema.TypeFullName},
		{"x", "email address", schema.TypeEmail},
		{"email", "city of birth", schema.TypeCity},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.hint, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeMeaning(tt.name, tt.hint))
		})
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"user", "email"}, words("userEmail"))
	assert.Equal(t, []string{"http", "status"}, words("HTTPStatus"))
	assert.Equal(t, []string{"zip", "code"}, words("zip-code"))
	assert.Equal(t, []string{"a", "b", "c"}, words("a_b c"))
	assert.Empty(t, words(""))
}
