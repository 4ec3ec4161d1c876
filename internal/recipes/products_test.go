package recipes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchProducts(t *testing.T) {
	payload := ingredientsPayload{Ingredients: []struct {
		Name string `json:"name"`
	}{
		{Name: "Pompoen"},
		{Name: "rode uien"},
	}}
	products := []ProductRef{
		{ID: "p-1", Name: "pompoen"},
		{ID: "p-2", Name: "Ui"},
		{ID: "p-3", Name: "Prei"},
	}

	got := matchProducts(payload, products)
	require.Len(t, got, 2)
	// case-insensitive, and containment works in both directions
	require.Equal(t, "p-1", got[0].ID)
	require.Equal(t, "p-2", got[1].ID)
}

func TestMatchProducts_NoIngredients(t *testing.T) {
	got := matchProducts(ingredientsPayload{}, []ProductRef{{ID: "p-1", Name: "Prei"}})
	require.NotNil(t, got)
	require.Empty(t, got)
}
