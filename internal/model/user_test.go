package model_test

import (
	"testing"

	"github.com/campusloop/campusloop/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRecipientNameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		user model.User
		want string
	}{
		{
			name: "display name wins",
			user: model.User{DisplayName: "PriyaS", FullName: "Priya Sharma", FirstName: "Priya"},
			want: "PriyaS",
		},
		{
			name: "full name next",
			user: model.User{FullName: "Priya Sharma", FirstName: "Priya", LastName: "Sharma"},
			want: "Priya Sharma",
		},
		{
			name: "first and last combined",
			user: model.User{FirstName: "Priya", LastName: "Sharma"},
			want: "Priya Sharma",
		},
		{
			name: "first name only",
			user: model.User{FirstName: "Priya"},
			want: "Priya",
		},
		{
			name: "whitespace-only fields fall through",
			user: model.User{DisplayName: "   ", FullName: "\t"},
			want: model.RecipientNamePlaceholder,
		},
		{
			name: "empty user gets placeholder",
			user: model.User{},
			want: model.RecipientNamePlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.RecipientName())
		})
	}
}

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, model.RoleAdmin.IsAdmin())
	assert.True(t, model.RoleCollegeAdmin.IsAdmin())
	assert.False(t, model.RoleOrganizer.IsAdmin())
	assert.False(t, model.RoleStudent.IsAdmin())
}
