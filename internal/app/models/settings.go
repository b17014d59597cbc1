package models

// Settings holds platform-wide branding and access flags managed from the
// admin console.
type Settings struct {
	Theme            string `json:"theme"`
	Logo             string `json:"logo"`
	MaintenanceMode  bool   `json:"maintenanceMode"`
	RegistrationOpen bool   `json:"registrationOpen"`
	GuestAccess      bool   `json:"guestAccess"`
}

// DefaultSettings returns the settings used before an administrator changes
// anything.
func DefaultSettings() Settings {
	return Settings{
		Theme:            "brand",
		Logo:             "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQ4pVMdWwEh3mqNQA2xeeDw4PLheK36bs5GZw&s",
		MaintenanceMode:  false,
		RegistrationOpen: true,
		GuestAccess:      true,
	}
}
