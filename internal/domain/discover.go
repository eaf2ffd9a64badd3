package domain

// Supplement is a product listed on the discovery screens.
type Supplement struct {
	Name     string `json:"name"`
	Shop     string `json:"shop"`
	Category string `json:"category"` // e.g., "Protein", "Creatine"
	Price    int    `json:"price"`    // whole US dollars
	ImageURL string `json:"imageUrl"`
}

// Coach is a personal trainer offering sessions.
type Coach struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Price    int    `json:"price"` // US dollars per session
	ImageURL string `json:"imageUrl"`
}
