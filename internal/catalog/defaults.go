package catalog

import "nova-packaging/internal/models"

// defaultProducts is the catalog a fresh installation starts with.
func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Biodegradable Boxes",
			Description: "Made from 100% recycled materials, our boxes decompose naturally without harming the environment.",
			Price:       25.99,
			Category:    "Boxes",
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?auto=format&fit=crop&q=80&w=800",
			Icon:        models.IconBox,
		},
		{
			ID:          "2",
			Name:        "Compostable Mailers",
			Description: "Plant-based mailers that break down completely in home compost within 180 days.",
			Price:       18.50,
			Category:    "Mailers",
			Image:       "https://images.unsplash.com/photo-1586075010923-2dd4570fb338?auto=format&fit=crop&q=80&w=800",
			Icon:        models.IconRecycle,
		},
		{
			ID:          "3",
			Name:        "Protective Solutions",
			Description: "Eco-friendly bubble wrap alternatives and protective packaging made from organic materials.",
			Price:       32.75,
			Category:    "Protection",
			Image:       "https://images.unsplash.com/photo-1605600659908-0ef719419d41?auto=format&fit=crop&q=80&w=800",
			Icon:        models.IconShield,
		},
	}
}
