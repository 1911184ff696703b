package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("phone")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = ParseField("Name")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestContactFormData_SetGet(t *testing.T) {
	var d ContactFormData
	require.NoError(t, d.Set(FieldPackage, "Pro AI Suite"))
	assert.Equal(t, "Pro AI Suite", d.Package)

	v, err := d.Get(FieldPackage)
	require.NoError(t, err)
	assert.Equal(t, "Pro AI Suite", v)

	assert.ErrorIs(t, d.Set(Field("phone"), "1"), ErrUnknownField)
	assert.False(t, d.IsEmpty())
}

func TestContactFormData_Validate(t *testing.T) {
	valid := ContactFormData{Name: "Ada", Email: "ada@example.com", Package: "Pro AI Suite"}
	assert.NoError(t, valid.Validate(), "message is optional")

	missing := ContactFormData{Message: "hi"}
	err := missing.Validate()
	assert.ErrorIs(t, err, ErrMissingField)
	assert.ErrorContains(t, err, "name")
	assert.ErrorContains(t, err, "email")
	assert.ErrorContains(t, err, "package")

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.ErrorIs(t, badEmail.Validate(), ErrInvalidEmail)

	blank := valid
	blank.Name = "   "
	assert.ErrorIs(t, blank.Validate(), ErrMissingField)
}

func TestTestimonialStars(t *testing.T) {
	filled, empty := Testimonial{Rating: 5}.Stars()
	assert.Equal(t, 5, filled)
	assert.Equal(t, 0, empty)

	filled, empty = Testimonial{Rating: 3}.Stars()
	assert.Equal(t, 3, filled)
	assert.Equal(t, 2, empty)

	filled, empty = Testimonial{Rating: 9}.Stars()
	assert.Equal(t, 5, filled)
	assert.Equal(t, 0, empty)
}
