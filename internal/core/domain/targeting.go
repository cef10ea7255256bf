package domain

// TargetingOverlay describes supplementary targeting constraints attached to
// a media buy: geography, device types and content categories. Field names
// match the sales agent wire format.
type TargetingOverlay struct {
	GeoCountryAnyOf []string `json:"geo_country_any_of"`
	DeviceTypeAnyOf []string `json:"device_type_any_of"`
	ContentCatAnyOf []string `json:"content_cat_any_of"`
}
