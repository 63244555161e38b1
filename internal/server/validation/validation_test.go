package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"a@x.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"nope", false},
		{"a@x", false},
		{"Jo <a@x.com>", false},
		{"a@@x.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var errs Errors
			Email("email", tt.in, "bad", &errs)
			assert.Equal(t, tt.valid, errs.Empty())
		})
	}
}

func TestMinLength_CountsRunes(t *testing.T) {
	var errs Errors
	MinLength("userName", "Žé", 2, "short", &errs)
	assert.True(t, errs.Empty())

	MinLength("userName", "J", 2, "short", &errs)
	assert.Equal(t, Errors{{Value: "J", Msg: "short", Param: "userName", Location: "body"}}, errs)
}

func TestRegistration(t *testing.T) {
	assert.True(t, Registration("a@x.com", "Jo", "12345").Empty())

	errs := Registration("bad", "J", "1234")
	assert.Equal(t, Errors{
		{Value: "bad", Msg: "Invalid value", Param: "email", Location: "body"},
		{Value: "J", Msg: "Enter a Valid Name", Param: "userName", Location: "body"},
		{Value: "1234", Msg: "Password must be 5 character long", Param: "password", Location: "body"},
	}, errs)
}

func TestLogin(t *testing.T) {
	assert.True(t, Login("a@x.com", "x").Empty())

	errs := Login("a@", "")
	assert.Len(t, errs, 2)
	assert.Equal(t, "Enter a valid email", errs[0].Msg)
	assert.Equal(t, "Password cannot be blank", errs[1].Msg)
}
