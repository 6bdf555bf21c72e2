package cloudflare

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func u16Ptr(v uint16) *uint16 { return &v }

func strPtr(s string) *string { return &s }

func typePtr(t RecordType) *RecordType { return &t }

func TestCreateDnsRecord_OmitsUnsetOptionals(t *testing.T) {
	payload := CreateDnsRecord{
		Type:    TypeTXT,
		Name:    "note.example.com",
		Content: "v=spf1 -all",
		TTL:     1,
	}

	data, err := json.Marshal(payload.sanitized())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "proxied")
	assert.NotContains(t, raw, "priority")
	assert.NotContains(t, raw, "comment")
	assert.Contains(t, raw, "ttl")
}

func TestCreateDnsRecord_ProxiedStrippedForMX(t *testing.T) {
	// Even an explicitly set proxied flag must be absent for a type that
	// cannot be proxied; the field is meaningless there, not false.
	payload := CreateDnsRecord{
		Type:     TypeMX,
		Name:     "example.com",
		Content:  "mail.example.com",
		TTL:      300,
		Proxied:  boolPtr(true),
		Priority: u16Ptr(10),
	}

	data, err := json.Marshal(payload.sanitized())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "proxied")
	assert.JSONEq(t, `10`, string(raw["priority"]))
}

func TestCreateDnsRecord_ProxiedKeptForA(t *testing.T) {
	for _, v := range []bool{true, false} {
		payload := CreateDnsRecord{
			Type:    TypeA,
			Name:    "www.example.com",
			Content: "1.2.3.4",
			TTL:     1,
			Proxied: boolPtr(v),
		}

		data, err := json.Marshal(payload.sanitized())
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		require.Contains(t, raw, "proxied")

		var got bool
		require.NoError(t, json.Unmarshal(raw["proxied"], &got))
		assert.Equal(t, v, got)
	}
}

func TestUpdateDnsRecord_OnlySetFieldsTransmitted(t *testing.T) {
	payload := UpdateDnsRecord{
		Content: strPtr("5.6.7.8"),
	}

	data, err := json.Marshal(payload.sanitized())
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"5.6.7.8"}`, string(data))
}

func TestUpdateDnsRecord_ProxiedStrippedWhenTypeBecomesNonProxiable(t *testing.T) {
	payload := UpdateDnsRecord{
		Type:    typePtr(TypeNS),
		Proxied: boolPtr(true),
	}

	data, err := json.Marshal(payload.sanitized())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"NS"}`, string(data))
}
