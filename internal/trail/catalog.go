package trail

// sampleTrails is the compiled-in catalog, in display order.
var sampleTrails = []Trail{
	{
		ID:         "1",
		Title:      "Mystic Forest Trail",
		Location:   "Elvenwood",
		Image:      "https://images.unsplash.com/photo-1533227481913-4a11f935b035?q=80&w=2070&auto=format&fit=crop",
		Rating:     4.8,
		Difficulty: Moderate,
		Category:   Hiking,
	},
	{
		ID:         "2",
		Title:      "Coastal Cliff Walk",
		Location:   "Seaside",
		Image:      "https://images.unsplash.com/photo-1507525428034-b723a9ce6890?q=80&w=2070&auto=format&fit=crop",
		Rating:     4.5,
		Difficulty: Easy,
		Category:   Hiking,
	},
	{
		ID:         "3",
		Title:      "Mountain Peak Ascent",
		Location:   "Dragon's Tooth",
		Image:      "https://images.unsplash.com/photo-1551632811-561732d1e306?q=80&w=2070&auto=format&fit=crop",
		Rating:     4.9,
		Difficulty: Hard,
		Category:   Mountains,
	},
	{
		ID:         "4",
		Title:      "Riverside Path",
		Location:   "Glimmerwood",
		Image:      "https://images.unsplash.com/photo-1476231682828-37e571bc172f?q=80&w=1974&auto=format&fit=crop",
		Rating:     4.2,
		Difficulty: Easy,
		Category:   Rivers,
	},
	{
		ID:         "5",
		Title:      "Crystal Caverns",
		Location:   "Underdark",
		Image:      "https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?q=80&w=2070&auto=format&fit=crop",
		Rating:     4.6,
		Difficulty: Moderate,
		Category:   Caves,
	},
	{
		ID:         "6",
		Title:      "Redwood Giants Trail",
		Location:   "Giant's Forest",
		Image:      "https://images.unsplash.com/photo-1542848123-b1479824d642?q=80&w=1974&auto=format&fit=crop",
		Rating:     4.9,
		Difficulty: Easy,
		Category:   Hiking,
	},
}

// Catalog returns a copy of the sample trails in display order.
func Catalog() []Trail {
	out := make([]Trail, len(sampleTrails))
	copy(out, sampleTrails)
	return out
}
