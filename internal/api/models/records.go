package models

// DNSRecord is a record as presented by the management API. Type is a
// plain token here; record kinds the editor cannot write still render
// (as "Other") even though they can never travel back to Cloudflare.
type DNSRecord struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	Content   string  `json:"content"`
	TTL       int     `json:"ttl"`
	Proxied   bool    `json:"proxied"`
	Proxiable bool    `json:"proxiable"`
	Priority  *uint16 `json:"priority,omitempty"`
	Comment   string  `json:"comment,omitempty"`
}

// RecordListResponse wraps a zone's full record list.
type RecordListResponse struct {
	Records []DNSRecord `json:"records"`
	Count   int         `json:"count"`
}

// CreateRecordRequest creates a new record. Optional fields left out of
// the body stay out of the upstream payload too.
type CreateRecordRequest struct {
	Type     string  `json:"type" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Content  string  `json:"content"`
	TTL      int     `json:"ttl" binding:"required"`
	Proxied  *bool   `json:"proxied"`
	Priority *uint16 `json:"priority"`
	Comment  *string `json:"comment"`
}

// UpdateRecordRequest applies a partial update: only fields present in
// the body are changed.
type UpdateRecordRequest struct {
	Type     *string `json:"type"`
	Name     *string `json:"name"`
	Content  *string `json:"content"`
	TTL      *int    `json:"ttl"`
	Proxied  *bool   `json:"proxied"`
	Priority *uint16 `json:"priority"`
	Comment  *string `json:"comment"`
}
