package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-ddd-user-record/internal/domain/entity"
)

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "Ana", nameFromEmail("ana@example.com"))
	assert.Equal(t, "Luis.garcia", nameFromEmail("luis.garcia@example.com"))
	assert.Equal(t, "@x.io", nameFromEmail("@x.io"))
	assert.Equal(t, "Plain", nameFromEmail("plain"))

	t.Run("multi-byte first letter", func(t *testing.T) {
		name := nameFromEmail("élodie@example.com")

		assert.True(t, utf8.ValidString(name), "invalid UTF-8: %q", name)
		assert.Equal(t, "Élodie", name)
	})
}

func TestPrintRole(t *testing.T) {
	tests := []struct {
		in      string
		want    entity.Role
		wantErr bool
	}{
		{"", "", false},
		{"  ", "", false},
		{"Student", entity.RoleStudent, false},
		{"teacher", entity.RoleTeacher, false},
		{"admin", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := printRole(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
