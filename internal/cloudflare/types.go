package cloudflare

// Zone is a domain reachable under the token's account. Zones are
// immutable snapshots: each ListZones call replaces the previous set
// wholesale, nothing mutates one in place.
type Zone struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Status  string      `json:"status"`
	Account ZoneAccount `json:"account"`
}

// ZoneAccount identifies the account owning a zone.
type ZoneAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DnsRecord is a single record within a zone as the server reports it.
type DnsRecord struct {
	ID        string     `json:"id"`
	Type      RecordType `json:"type"`
	Name      string     `json:"name"`
	Content   string     `json:"content"`
	TTL       int        `json:"ttl"` // seconds; 1 means "automatic"
	Proxied   bool       `json:"proxied"`
	Proxiable bool       `json:"proxiable"`
	Priority  *uint16    `json:"priority,omitempty"`
	Comment   string     `json:"comment,omitempty"`
}

// CreateDnsRecord is the write payload for new records. Optional fields
// are pointers so that an unset field is omitted from the JSON body
// entirely, never sent as null or a zero value.
type CreateDnsRecord struct {
	Type     RecordType `json:"type"`
	Name     string     `json:"name"`
	Content  string     `json:"content"`
	TTL      int        `json:"ttl"`
	Proxied  *bool      `json:"proxied,omitempty"`
	Priority *uint16    `json:"priority,omitempty"`
	Comment  *string    `json:"comment,omitempty"`
}

// UpdateDnsRecord is the partial-update payload: every field is optional
// and only explicitly set fields are transmitted. This is deliberately a
// separate type from CreateDnsRecord; the two contracts differ.
type UpdateDnsRecord struct {
	Type     *RecordType `json:"type,omitempty"`
	Name     *string     `json:"name,omitempty"`
	Content  *string     `json:"content,omitempty"`
	TTL      *int        `json:"ttl,omitempty"`
	Proxied  *bool       `json:"proxied,omitempty"`
	Priority *uint16     `json:"priority,omitempty"`
	Comment  *string     `json:"comment,omitempty"`
}

// sanitized returns a copy with the proxied flag dropped unless the record
// type supports proxying. The API only understands proxied on A, AAAA and
// CNAME records; for everything else the field must be absent.
func (r CreateDnsRecord) sanitized() CreateDnsRecord {
	if r.Proxied != nil && !r.Type.IsProxiable() {
		r.Proxied = nil
	}
	return r
}

// sanitized drops proxied when a non-proxiable type is part of the update.
// If the type is not being changed the server-side type is unknown here,
// so the flag is passed through untouched.
func (r UpdateDnsRecord) sanitized() UpdateDnsRecord {
	if r.Proxied != nil && r.Type != nil && !r.Type.IsProxiable() {
		r.Proxied = nil
	}
	return r
}
