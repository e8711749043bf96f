package catalog

// Category is one of the fixed set of design categories. CategoryAll is a
// sentinel used only for filtering, never on a product record.
type Category string

const CategoryAll Category = "All"

// Categories is the fixed category set, in display order, with the "All"
// sentinel first.
var Categories = []Category{
	CategoryAll,
	"Anime", "Naruto", "Dragon Ball Z", "One Piece",
	"Attack on Titan", "Death Note", "Demon Slayer", "My Hero Academia",
	"Jujutsu Kaisen", "Bleach", "Tokyo Revengers", "Blue Lock", "Solo leveling",
	"One Punch Man", "Wind Breaker", "Sports", "Actors", "Love",
	"Marvel", "DC", "Hollywood", "Tamil Movies", "Cartoon",
	"K-Pop", "K-Drama", "Singers", "Heroines",
}

// Product is a single printable design in the master catalogue. Products are
// immutable and seeded statically at startup.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    int      `json:"price"`
	ImageURL string   `json:"imageUrl"`
}

// PriceTier is one of the fixed print-size price points.
type PriceTier struct {
	Label string `json:"label"`
	Price int    `json:"price"`
}

// PriceTiers are the advertised print sizes, in whole rupees.
var PriceTiers = []PriceTier{
	{Label: "Small", Price: 20},
	{Label: "Medium", Price: 50},
	{Label: "Large", Price: 100},
}
