package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "ten digits", raw: "8135551234", want: "+18135551234"},
		{name: "eleven digits with country code", raw: "18135551234", want: "+18135551234"},
		{name: "already e164", raw: "+18135551234", want: "+18135551234"},
		{name: "formatted", raw: "(813) 555-1234", want: "+18135551234"},
		{name: "dots and spaces", raw: "813.555.1234", want: "+18135551234"},
		{name: "empty", raw: "", want: ""},
		{name: "no digits", raw: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}
