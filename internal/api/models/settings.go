package models

// AppearanceResponse reports the stored appearance preference.
type AppearanceResponse struct {
	Mode string `json:"mode"` // "light", "dark" or "auto"
}

// SetAppearanceRequest sets the appearance preference.
type SetAppearanceRequest struct {
	Mode string `json:"mode" binding:"required"`
}
