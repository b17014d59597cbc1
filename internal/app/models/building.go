package models

// MapCoords positions a building on the campus map as percentage offsets.
type MapCoords struct {
	Top  string `json:"top"`
	Left string `json:"left"`
}

// CampusBuilding is one block on the campus map.
type CampusBuilding struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Image       string    `json:"image"`
	Floors      int       `json:"floors"`
	Departments []string  `json:"departments"`
	Facilities  []string  `json:"facilities"`
	MapCoords   MapCoords `json:"mapCoords"`
	Authorities []string  `json:"authorities,omitempty"`
}
