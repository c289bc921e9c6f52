package entities

// AppConfig holds shop branding and the global labor rate used for invoicing.
type AppConfig struct {
	CompanyName  string  `json:"companyName"`
	LogoURL      string  `json:"logoUrl,omitempty"`
	PrimaryColor string  `json:"primaryColor,omitempty"`
	HourlyRate   float64 `json:"hourlyRate"`
}
