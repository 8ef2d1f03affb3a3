package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "Jane", "Jane"},
		{"email", "jane@doe.com", "jane@doe.com"},
		{"bold tag", "<b>Jane</b>", "Jane"},
		{"script dropped", "<script>alert(1)</script>Jane", "Jane"},
		{"attributes dropped", `<a href="javascript:alert(1)">Doe</a>`, "Doe"},
		{"whitespace", "  Jane  ", "Jane"},
		{"apostrophe email", "o'neil@x.com", "o'neil@x.com"},
		{"apostrophe name", "O'Brien", "O'Brien"},
		{"ampersand email", "a&b@x.com", "a&b@x.com"},
		{"double quotes", `Jane "JD" Doe`, `Jane "JD" Doe`},
		{"tag around quote", "<i>O'Brien</i>", "O'Brien"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}
