package cloudflare

import (
	"encoding/json"
	"fmt"
	"net/netip"
)

// RecordType is a DNS record kind as the Cloudflare API spells it.
//
// The set is closed: the nine concrete types below are everything the
// editor knows how to write. Unknown tokens coming back from the API
// deserialize to TypeOther so a zone with exotic records still lists
// cleanly, but TypeOther has no wire encoding of its own and refuses
// to marshal.
type RecordType string

const (
	TypeA     RecordType = "A"
	TypeAAAA  RecordType = "AAAA"
	TypeCNAME RecordType = "CNAME"
	TypeMX    RecordType = "MX"
	TypeTXT   RecordType = "TXT"
	TypeNS    RecordType = "NS"
	TypeSRV   RecordType = "SRV"
	TypeCAA   RecordType = "CAA"
	TypePTR   RecordType = "PTR"

	// TypeOther is the fallback for record kinds the editor does not
	// model. It is never constructed locally and never sent.
	TypeOther RecordType = "Other"
)

// AllRecordTypes returns the concrete record types in the fixed order
// used to populate type selectors. TypeOther is excluded.
func AllRecordTypes() []RecordType {
	return []RecordType{
		TypeA, TypeAAAA, TypeCNAME, TypeMX, TypeTXT,
		TypeNS, TypeSRV, TypeCAA, TypePTR,
	}
}

// ParseRecordType maps an uppercase wire token to its RecordType.
// Unrecognized tokens map to TypeOther.
func ParseRecordType(s string) RecordType {
	switch RecordType(s) {
	case TypeA, TypeAAAA, TypeCNAME, TypeMX, TypeTXT, TypeNS, TypeSRV, TypeCAA, TypePTR:
		return RecordType(s)
	default:
		return TypeOther
	}
}

func (t RecordType) String() string {
	return string(t)
}

// IsProxiable reports whether records of this type can be served through
// Cloudflare's proxy layer.
func (t RecordType) IsProxiable() bool {
	switch t {
	case TypeA, TypeAAAA, TypeCNAME:
		return true
	default:
		return false
	}
}

// RequiresPriority reports whether the API mandates a priority field for
// this type.
func (t RecordType) RequiresPriority() bool {
	return t == TypeMX || t == TypeSRV
}

// ValidationError describes why record content was rejected before any
// request was issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidateContent checks content against the shape rule for this type.
//
// Only A, AAAA and the hostname-valued types have rules; TXT, SRV and CAA
// accept anything, including empty content. SRV still requires a priority
// (see RequiresPriority) even though its content is unchecked.
func (t RecordType) ValidateContent(content string) error {
	switch t {
	case TypeA:
		addr, err := netip.ParseAddr(content)
		if err != nil || !addr.Is4() {
			return &ValidationError{Reason: "Invalid IPv4 address"}
		}
	case TypeAAAA:
		addr, err := netip.ParseAddr(content)
		if err != nil || !addr.Is6() {
			return &ValidationError{Reason: "Invalid IPv6 address"}
		}
	case TypeMX, TypeCNAME, TypeNS, TypePTR:
		if content == "" {
			return &ValidationError{Reason: "Content cannot be empty"}
		}
	}
	return nil
}

// MarshalJSON emits the uppercase wire token. TypeOther (and anything
// else outside the closed set) cannot be written to the API.
func (t RecordType) MarshalJSON() ([]byte, error) {
	if ParseRecordType(string(t)) == TypeOther {
		return nil, fmt.Errorf("record type %q has no wire encoding", string(t))
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON accepts any string token, mapping unknown kinds to
// TypeOther rather than failing the whole record list.
func (t *RecordType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseRecordType(s)
	return nil
}
