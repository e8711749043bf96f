package catalog

// Index is the static, read-only catalogue of orderable designs. It is built
// once at startup and never mutated afterwards.
type Index struct {
	products []Product
}

// NewIndex builds the catalogue from the given products, or from the built-in
// seed when none are provided.
func NewIndex(products ...Product) *Index {
	if len(products) == 0 {
		products = seedProducts
	}
	return &Index{products: products}
}

// All returns every product in catalogue order. The returned slice is a copy;
// callers cannot mutate the index through it.
func (ix *Index) All() []Product {
	out := make([]Product, len(ix.products))
	copy(out, ix.products)
	return out
}

const assetBase = "https://assets.cardsandposters.in/designs"

var seedProducts = []Product{
	{ID: "nrt-001", Name: "Naruto Sage Mode", Category: "Naruto", Price: 20, ImageURL: assetBase + "/nrt-001.jpg"},
	{ID: "nrt-002", Name: "Itachi Crows", Category: "Naruto", Price: 20, ImageURL: assetBase + "/nrt-002.jpg"},
	{ID: "nrt-003", Name: "Kakashi Lightning Blade", Category: "Naruto", Price: 20, ImageURL: assetBase + "/nrt-003.jpg"},
	{ID: "dbz-001", Name: "Dragon Ball Z Goku Ultra Instinct", Category: "Dragon Ball Z", Price: 20, ImageURL: assetBase + "/dbz-001.jpg"},
	{ID: "dbz-002", Name: "Dragon Ball Z Vegeta Final Flash", Category: "Dragon Ball Z", Price: 20, ImageURL: assetBase + "/dbz-002.jpg"},
	{ID: "dbz-003", Name: "Dragon Ball Z Gohan Beast", Category: "Dragon Ball Z", Price: 20, ImageURL: assetBase + "/dbz-003.jpg"},
	{ID: "onp-001", Name: "Luffy Gear Five", Category: "One Piece", Price: 20, ImageURL: assetBase + "/onp-001.jpg"},
	{ID: "onp-002", Name: "Zoro Three Sword Style", Category: "One Piece", Price: 20, ImageURL: assetBase + "/onp-002.jpg"},
	{ID: "aot-001", Name: "Levi Ackerman", Category: "Attack on Titan", Price: 20, ImageURL: assetBase + "/aot-001.jpg"},
	{ID: "aot-002", Name: "Eren Founding Titan", Category: "Attack on Titan", Price: 20, ImageURL: assetBase + "/aot-002.jpg"},
	{ID: "dtn-001", Name: "Light Yagami", Category: "Death Note", Price: 20, ImageURL: assetBase + "/dtn-001.jpg"},
	{ID: "dsl-001", Name: "Tanjiro Water Breathing", Category: "Demon Slayer", Price: 20, ImageURL: assetBase + "/dsl-001.jpg"},
	{ID: "dsl-002", Name: "Rengoku Flame Hashira", Category: "Demon Slayer", Price: 20, ImageURL: assetBase + "/dsl-002.jpg"},
	{ID: "mha-001", Name: "Deku Full Cowling", Category: "My Hero Academia", Price: 20, ImageURL: assetBase + "/mha-001.jpg"},
	{ID: "jjk-001", Name: "Gojo Infinity", Category: "Jujutsu Kaisen", Price: 20, ImageURL: assetBase + "/jjk-001.jpg"},
	{ID: "jjk-002", Name: "Sukuna King of Curses", Category: "Jujutsu Kaisen", Price: 20, ImageURL: assetBase + "/jjk-002.jpg"},
	{ID: "blc-001", Name: "Ichigo Bankai", Category: "Bleach", Price: 20, ImageURL: assetBase + "/blc-001.jpg"},
	{ID: "tkr-001", Name: "Mikey Invincible", Category: "Tokyo Revengers", Price: 20, ImageURL: assetBase + "/tkr-001.jpg"},
	{ID: "blk-001", Name: "Isagi Ego", Category: "Blue Lock", Price: 20, ImageURL: assetBase + "/blk-001.jpg"},
	{ID: "slv-001", Name: "Sung Jinwoo Shadow Monarch", Category: "Solo leveling", Price: 20, ImageURL: assetBase + "/slv-001.jpg"},
	{ID: "opm-001", Name: "Saitama Serious Punch", Category: "One Punch Man", Price: 20, ImageURL: assetBase + "/opm-001.jpg"},
	{ID: "wbr-001", Name: "Sakura Haruka", Category: "Wind Breaker", Price: 20, ImageURL: assetBase + "/wbr-001.jpg"},
	{ID: "spt-001", Name: "Messi World Cup Lift", Category: "Sports", Price: 20, ImageURL: assetBase + "/spt-001.jpg"},
	{ID: "spt-002", Name: "Ronaldo Siu", Category: "Sports", Price: 20, ImageURL: assetBase + "/spt-002.jpg"},
	{ID: "spt-003", Name: "Virat Kohli Century", Category: "Sports", Price: 20, ImageURL: assetBase + "/spt-003.jpg"},
	{ID: "act-001", Name: "Thalapathy Vijay", Category: "Actors", Price: 20, ImageURL: assetBase + "/act-001.jpg"},
	{ID: "lov-001", Name: "Couple Silhouette Sunset", Category: "Love", Price: 20, ImageURL: assetBase + "/lov-001.jpg"},
	{ID: "mrv-001", Name: "Iron Man Endgame", Category: "Marvel", Price: 20, ImageURL: assetBase + "/mrv-001.jpg"},
	{ID: "mrv-002", Name: "Spider-Man No Way Home", Category: "Marvel", Price: 20, ImageURL: assetBase + "/mrv-002.jpg"},
	{ID: "dcu-001", Name: "Batman Gotham Rain", Category: "DC", Price: 20, ImageURL: assetBase + "/dcu-001.jpg"},
	{ID: "hwd-001", Name: "Interstellar Tesseract", Category: "Hollywood", Price: 20, ImageURL: assetBase + "/hwd-001.jpg"},
	{ID: "tml-001", Name: "Vikram Rolex", Category: "Tamil Movies", Price: 20, ImageURL: assetBase + "/tml-001.jpg"},
	{ID: "ctn-001", Name: "Tom and Jerry Classic", Category: "Cartoon", Price: 20, ImageURL: assetBase + "/ctn-001.jpg"},
	{ID: "kpp-001", Name: "BTS Dynamite", Category: "K-Pop", Price: 20, ImageURL: assetBase + "/kpp-001.jpg"},
	{ID: "kpp-002", Name: "Blackpink Born Pink", Category: "K-Pop", Price: 20, ImageURL: assetBase + "/kpp-002.jpg"},
	{ID: "kdr-001", Name: "Vincenzo", Category: "K-Drama", Price: 20, ImageURL: assetBase + "/kdr-001.jpg"},
	{ID: "sng-001", Name: "Arijit Singh Live", Category: "Singers", Price: 20, ImageURL: assetBase + "/sng-001.jpg"},
	{ID: "hrn-001", Name: "Samantha Portrait", Category: "Heroines", Price: 20, ImageURL: assetBase + "/hrn-001.jpg"},
	{ID: "anm-001", Name: "Anime Collage Wall", Category: "Anime", Price: 20, ImageURL: assetBase + "/anm-001.jpg"},
	{ID: "anm-002", Name: "Studio Ghibli Skyline", Category: "Anime", Price: 20, ImageURL: assetBase + "/anm-002.jpg"},
}
