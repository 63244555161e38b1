package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONOmitsPassword(t *testing.T) {
	b, err := json.Marshal(User{ID: "u1", UserName: "Jo", Email: "a@x.com", Password: "$2a$10$hash"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	assert.Equal(t, "Jo", m["userName"])
	assert.Equal(t, "a@x.com", m["email"])
	assert.NotContains(t, m, "password")
	assert.NotContains(t, m, "Password")
	assert.NotContains(t, string(b), "$2a$10$hash")
}

func TestProfile_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Profile{ID: "p1", UserID: "u1", UserName: "Jo", Email: "a@x.com", NationalIDNumber: "12345"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	assert.Equal(t, "u1", m["user"])
	assert.Equal(t, "12345", m["bvn"])
	assert.NotContains(t, m, "phone", "empty optional fields are omitted")
}
