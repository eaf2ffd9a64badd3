package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplementsSearch(t *testing.T) {
	assert.Len(t, Supplements("", ""), 3)

	got := Supplements("  PROT ", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Whey Protein", got[0].Name)
	assert.Equal(t, "Fit Gym", got[0].Shop)
	assert.Equal(t, 35, got[0].Price)

	assert.Empty(t, Supplements("fish oil", ""))
	assert.NotNil(t, Supplements("fish oil", ""))
}

func TestSupplementsByCategory(t *testing.T) {
	got := Supplements("", "amino")
	require.Len(t, got, 1)
	assert.Equal(t, "BCAA", got[0].Name)

	assert.Empty(t, Supplements("whey", "Creatine"))
	assert.Empty(t, Supplements("", "Vitamins"))
}

func TestCoachesSearch(t *testing.T) {
	assert.Len(t, Coaches(""), 3)

	got := Coaches("jane")
	require.Len(t, got, 1)
	assert.Equal(t, "Los Angeles, CA", got[0].Location)
	assert.Equal(t, 65, got[0].Price)

	// Only names are searched.
	assert.Empty(t, Coaches("chicago"))
}

func TestListingsAreCopies(t *testing.T) {
	Coaches("")[0].Name = "changed"
	Supplements("", "")[0].Name = "changed"
	assert.Equal(t, "John Doe", Coaches("")[0].Name)
	assert.Equal(t, "Whey Protein", Supplements("", "")[0].Name)
}
