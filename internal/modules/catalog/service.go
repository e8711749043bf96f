package catalog

// Service defines catalogue browsing logic.
type Service interface {
	// ListProducts returns the visible subset for the given selection, in
	// catalogue order. An empty result is a valid terminal state.
	ListProducts(activeCategory Category, query string) []Product

	// GetProduct looks a product up by id.
	GetProduct(id string) (Product, bool)

	// Categories returns the fixed category set, "All" sentinel included.
	Categories() []Category

	// PriceTiers returns the advertised print-size price points.
	PriceTiers() []PriceTier
}

type service struct{ index *Index }

// NewService creates a catalogue service over a static index.
func NewService(index *Index) Service { return &service{index: index} }

func (s *service) ListProducts(activeCategory Category, query string) []Product {
	if activeCategory == "" {
		activeCategory = CategoryAll
	}
	return Visible(s.index.All(), activeCategory, query)
}

func (s *service) GetProduct(id string) (Product, bool) {
	for _, p := range s.index.All() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *service) Categories() []Category { return Categories }

func (s *service) PriceTiers() []PriceTier { return PriceTiers }
