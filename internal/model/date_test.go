package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1990-05-01"`), &d))
	assert.Equal(t, "1990-05-01", d.String())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-05-01"`, string(out))
}

func TestDate_NullAndZero(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestDate_RejectsMalformed(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"01/05/1990"`), &d))
}

func TestUserResponse_OmitsPasswordHash(t *testing.T) {
	user := User{ID: "u1", Login: "bob", PasswordHash: "secret-hash"}

	out, err := json.Marshal(user.ToResponse())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret-hash")
	assert.NotContains(t, string(out), "password")
}

func TestCar_JSONOmitsOwner(t *testing.T) {
	car := Car{ID: "c1", Year: 2024, LicensePlate: "ABC-1234", Model: "X", Color: "red", UserID: "u1"}

	out, err := json.Marshal(car)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "u1")
	assert.Contains(t, string(out), "ABC-1234")
}
