package model

// Statistics summarises record counts for the admin dashboard.
type Statistics struct {
	TotalContacts     int `json:"total_contacts"`
	TotalApplications int `json:"total_applications"`
	NewContacts       int `json:"new_contacts"`
	NewApplications   int `json:"new_applications"`
}
