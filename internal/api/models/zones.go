package models

// Zone is a zone snapshot as presented by the management API.
type Zone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// ZoneListResponse wraps the full zone list.
type ZoneListResponse struct {
	Zones []Zone `json:"zones"`
	Count int    `json:"count"`
}
