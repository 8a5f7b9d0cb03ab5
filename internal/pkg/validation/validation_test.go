package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type productForm struct {
	SKU      string  `json:"sku" validate:"required,max=50"`
	Name     string  `json:"name" validate:"required,max=200"`
	Price    float64 `json:"price" validate:"gte=0"`
	Discount float64 `json:"discount" validate:"gte=0,lte=100"`
	Status   string  `json:"status" validate:"omitempty,oneof=active inactive draft"`
}

func TestStructValid(t *testing.T) {
	msgs := Struct(&loginForm{Email: "admin@example.com", Password: "supersecret"})
	assert.Empty(t, msgs)
}

func TestStructInvalidEmailAndShortPassword(t *testing.T) {
	msgs := Struct(&loginForm{Email: "not-an-email", Password: "short"})
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs, "Invalid email address")
	assert.Contains(t, msgs, "Password must be at least 8 characters long")
}

func TestStructRequired(t *testing.T) {
	msgs := Struct(&loginForm{})
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs, "Email is required")
	assert.Contains(t, msgs, "Password is required")
}

func TestStructNumericBounds(t *testing.T) {
	msgs := Struct(&productForm{SKU: "SKU-1", Name: "Widget", Price: -1, Discount: 120})
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs, "Price must be 0 or greater")
	assert.Contains(t, msgs, "Discount must be 100 or less")
}

func TestStructOneOf(t *testing.T) {
	msgs := Struct(&productForm{SKU: "SKU-1", Name: "Widget", Status: "archived"})
	require.Len(t, msgs, 1)
	assert.Equal(t, "Status must be one of: active inactive draft", msgs[0])
}

func TestHumanizeCamelCase(t *testing.T) {
	type form struct {
		FullName string `json:"fullName" validate:"required"`
	}

	msgs := Struct(&form{})
	require.Len(t, msgs, 1)
	assert.Equal(t, "Full name is required", msgs[0])
}
