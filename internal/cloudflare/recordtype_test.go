package cloudflare

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllRecordTypes_FixedOrder(t *testing.T) {
	expected := []RecordType{
		TypeA, TypeAAAA, TypeCNAME, TypeMX, TypeTXT,
		TypeNS, TypeSRV, TypeCAA, TypePTR,
	}
	assert.Equal(t, expected, AllRecordTypes())
	assert.NotContains(t, AllRecordTypes(), TypeOther)
}

func TestIsProxiable(t *testing.T) {
	proxiable := map[RecordType]bool{
		TypeA: true, TypeAAAA: true, TypeCNAME: true,
	}
	for _, rt := range AllRecordTypes() {
		assert.Equal(t, proxiable[rt], rt.IsProxiable(), "type %s", rt)
	}
	assert.False(t, TypeOther.IsProxiable())
}

func TestRequiresPriority(t *testing.T) {
	required := map[RecordType]bool{
		TypeMX: true, TypeSRV: true,
	}
	for _, rt := range AllRecordTypes() {
		assert.Equal(t, required[rt], rt.RequiresPriority(), "type %s", rt)
	}
}

func TestValidateContent_A(t *testing.T) {
	assert.NoError(t, TypeA.ValidateContent("1.2.3.4"))

	err := TypeA.ValidateContent("256.1.1.1")
	require.Error(t, err)
	assert.Equal(t, "Invalid IPv4 address", err.Error())

	// IPv6 content is not a valid A record either.
	assert.Error(t, TypeA.ValidateContent("::1"))
	assert.Error(t, TypeA.ValidateContent("1.2.3"))
	assert.Error(t, TypeA.ValidateContent(""))
}

func TestValidateContent_AAAA(t *testing.T) {
	assert.NoError(t, TypeAAAA.ValidateContent("::1"))
	assert.NoError(t, TypeAAAA.ValidateContent("2001:db8::1"))

	err := TypeAAAA.ValidateContent("not-an-ip")
	require.Error(t, err)
	assert.Equal(t, "Invalid IPv6 address", err.Error())

	assert.Error(t, TypeAAAA.ValidateContent("1.2.3.4"))
}

func TestValidateContent_HostnameTypes(t *testing.T) {
	for _, rt := range []RecordType{TypeMX, TypeCNAME, TypeNS, TypePTR} {
		err := rt.ValidateContent("")
		require.Error(t, err, "type %s", rt)
		assert.Equal(t, "Content cannot be empty", err.Error())

		assert.NoError(t, rt.ValidateContent("example.com"))
	}
}

func TestValidateContent_Unvalidated(t *testing.T) {
	// TXT, SRV and CAA accept anything, including empty content. SRV's
	// priority requirement is a separate check.
	for _, rt := range []RecordType{TypeTXT, TypeSRV, TypeCAA, TypeOther} {
		assert.NoError(t, rt.ValidateContent(""), "type %s", rt)
		assert.NoError(t, rt.ValidateContent("anything at all"), "type %s", rt)
	}
}

func TestRecordType_WireRoundTrip(t *testing.T) {
	for _, rt := range AllRecordTypes() {
		data, err := json.Marshal(rt)
		require.NoError(t, err)
		assert.Equal(t, `"`+rt.String()+`"`, string(data))

		var parsed RecordType
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, rt, parsed)
	}
}

func TestRecordType_UnknownTokenParsesToOther(t *testing.T) {
	var parsed RecordType
	require.NoError(t, json.Unmarshal([]byte(`"NAPTR"`), &parsed))
	assert.Equal(t, TypeOther, parsed)

	assert.Equal(t, TypeOther, ParseRecordType("HTTPS"))
	assert.Equal(t, TypeOther, ParseRecordType("a")) // tokens are uppercase
}

func TestRecordType_OtherRefusesToMarshal(t *testing.T) {
	_, err := json.Marshal(TypeOther)
	assert.Error(t, err)

	// A payload carrying the fallback cannot be serialized at all.
	_, err = json.Marshal(CreateDnsRecord{Type: TypeOther, Name: "x", Content: "y", TTL: 1})
	assert.Error(t, err)
}
