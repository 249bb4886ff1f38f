package domain

// Room is a bookable room type
type Room struct {
	ID         string
	Name       string
	NightPrice float64
	MaxGuests  int
}

// DiningExperience is a curated dining offer charged per person
type DiningExperience struct {
	ID          string
	Name        string
	Subtitle    string
	Price       float64
	Recommended bool
}

// Rooms is the static room catalog
var Rooms = []Room{
	{ID: "jungle-suite", Name: "Executive Suite", NightPrice: 450, MaxGuests: 4},
	{ID: "canopy-room", Name: "Canopy Room", NightPrice: 320, MaxGuests: 2},
	{ID: "garden-villa", Name: "Garden Villa", NightPrice: 750, MaxGuests: 6},
}

// DiningExperiences is the static dining catalog
var DiningExperiences = []DiningExperience{
	{ID: "verdant-dining", Name: "Verdant Dining", Subtitle: "Signature jungle tasting menu", Price: 650, Recommended: true},
	{ID: "forest-terrace", Name: "Forest Terrace", Subtitle: "Open-air terrace dinner", Price: 850},
	{ID: "chef-table", Name: "Chef's Table", Subtitle: "Private table with the chef", Price: 900},
}

// FindRoom returns the room with the given ID
func FindRoom(id string) (Room, bool) {
	for _, r := range Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// FindDiningExperience returns the experience with the given ID
func FindDiningExperience(id string) (DiningExperience, bool) {
	for _, e := range DiningExperiences {
		if e.ID == id {
			return e, true
		}
	}
	return DiningExperience{}, false
}
