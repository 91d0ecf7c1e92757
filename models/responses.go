package models

// Welcome is returned by GET /.
type Welcome struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}

// Health is returned by GET /health.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
}

// SystemInfo is returned by GET /info.
type SystemInfo struct {
	AppName    string `json:"app_name"`
	AppVersion string `json:"app_version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	Host       string `json:"host"`
	Port       int    `json:"port"`
	AppBuildInfo
}

// PatientList is a page of patients.
type PatientList struct {
	// Total is the size of the whole collection, not of this page.
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
	Patients []Patient `json:"patients"`
}

// PatientResult is returned by create and update.
type PatientResult struct {
	Message string  `json:"message"`
	Patient Patient `json:"patient"`
}

// Message is a bare status message.
type Message struct {
	Message string `json:"message"`
}
