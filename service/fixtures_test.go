package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aqua-store/models"
	"aqua-store/repository"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{
			Code: "P001", Name: "Silla Nórdica", Description: "Silla de roble macizo",
			Category: "Chairs", Price: 1200, Status: models.StatusAvailable,
			Images: []string{"img/p001-1.jpg", "img/p001-2.jpg", "img/p001-3.jpg"},
		},
		{
			Code: "B2", Name: "Mesa Comedor", Description: "Mesa para seis personas",
			Category: "Tables", Price: 45000, Status: models.StatusSold,
			Images: []string{"img/b2.jpg"},
		},
		{
			Code: "C3", Name: "Acuario Coral", Description: "Pecera de 120 litros",
			Category: "Aquariums", Price: 320000, Status: models.StatusReserved,
			Images: []string{"https://cdn.example.com/c3.jpg", "img/c3-2.jpg"},
		},
		{
			Code: "D4", Name: "Banco Alto", Description: "Banco de cocina con respaldo",
			Category: "Chairs", Price: 800, Status: models.StatusAvailable,
			Images: []string{"img/d4.jpg"},
		},
	}
}

func loadedStore(t *testing.T, products ...models.Product) *CatalogStore {
	t.Helper()
	if len(products) == 0 {
		products = sampleCatalog()
	}
	store := NewCatalogStore(repository.NewMemorySource(products...), zap.NewNop())
	require.NoError(t, store.Load(context.Background()))
	return store
}

func codes(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Code)
	}
	return out
}
