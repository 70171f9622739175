package apimodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecordSet(t *testing.T) {
	records, err := DecodeRecordSet([]byte(`{
		"alice": {"PACKAGE": "default", "U_DISK": 12, "SUSPENDED": "no", "LIMITED": true},
		"bob": {"PACKAGE": "gold", "NS": ["ns1.example.com", "ns2.example.com"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob"}, records.Keys())
	assert.Equal(t, "default", records["alice"].Get("PACKAGE"))
	assert.Equal(t, "12", records["alice"].Get("U_DISK"))
	assert.Equal(t, "true", records["alice"].Get("LIMITED"))
	assert.Equal(t, `["ns1.example.com", "ns2.example.com"]`, records["bob"].Get("NS"))
	assert.Equal(t, "", records["bob"].Get("MISSING"))
}

func TestDecodeRecordSetEmpty(t *testing.T) {
	records, err := DecodeRecordSet([]byte("[]"))
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = DecodeRecordSet([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = DecodeRecordSet([]byte("USER PACKAGE"))
	assert.Error(t, err)
}

func TestDecodeRecord(t *testing.T) {
	record, err := DecodeRecord([]byte(`{"VERSION": "0.9.8", "RELEASE": 26}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"RELEASE", "VERSION"}, record.Keys())
	assert.Equal(t, "26", record.Get("RELEASE"))

	var missing Record
	assert.Equal(t, "", missing.Get("VERSION"))
}

func TestUserRequestValidate(t *testing.T) {
	valid := UserRequest{Username: "alice", Password: "pw", Email: "alice@example.com"}
	assert.NoError(t, valid.Validate())

	for name, request := range map[string]UserRequest{
		"no user":       {Password: "pw", Email: "a@example.com"},
		"bad user":      {Username: "al ice", Password: "pw", Email: "a@example.com"},
		"no password":   {Username: "alice", Email: "a@example.com"},
		"no email":      {Username: "alice", Password: "pw"},
		"last no first": {Username: "alice", Password: "pw", Email: "a@example.com", LastName: "Liddell"},
	} {
		assert.Error(t, request.Validate(), name)
	}
}

func TestUserRequestArguments(t *testing.T) {
	request := UserRequest{Username: "alice", Password: "pw", Email: "a@example.com"}
	assert.Equal(t, []string{"alice", "pw", "a@example.com"}, request.Arguments())

	request.Package = "gold"
	assert.Equal(t, []string{"alice", "pw", "a@example.com", "gold"}, request.Arguments())

	request.FirstName = "Alice"
	request.LastName = "Liddell"
	assert.Equal(t, []string{"alice", "pw", "a@example.com", "gold", "Alice", "Liddell"}, request.Arguments())
}

func TestUsernameRegex(t *testing.T) {
	assert.True(t, UsernameRegex.MatchString("alice"))
	assert.True(t, UsernameRegex.MatchString("web-1.user_a"))
	assert.False(t, UsernameRegex.MatchString("-alice"))
	assert.False(t, UsernameRegex.MatchString("alice smith"))
	assert.False(t, UsernameRegex.MatchString(""))
}
