package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestNormalizeSkills(t *testing.T) {
	t.Run("lowercases trims and deduplicates", func(t *testing.T) {
		got := NormalizeSkills([]string{"Navigation", " navigation ", "COOKING", "", "  "})
		assert.Equal(t, []string{"navigation", "cooking"}, got)
	})

	t.Run("preserves first occurrence order", func(t *testing.T) {
		got := NormalizeSkills([]string{"sailing", "cooking", "Sailing"})
		assert.Equal(t, []string{"sailing", "cooking"}, got)
	})

	t.Run("empty input passes through", func(t *testing.T) {
		assert.Empty(t, NormalizeSkills(nil))
	})
}

func TestResolveEffective(t *testing.T) {
	journey := Journey{
		Skills:        []string{"Navigation", "Watchkeeping"},
		RiskLevel:     strPtr("coastal"),
		MinExperience: intPtr(3),
	}

	t.Run("leg without overrides inherits journey defaults", func(t *testing.T) {
		eff := ResolveEffective(journey, Leg{})
		assert.Equal(t, []string{"navigation", "watchkeeping"}, eff.Skills)
		assert.Equal(t, "coastal", *eff.RiskLevel)
		assert.Equal(t, 3, *eff.MinExperience)
	})

	t.Run("skills are the union of journey and leg", func(t *testing.T) {
		eff := ResolveEffective(journey, Leg{Skills: []string{"navigation", "Night Sailing"}})
		assert.Equal(t, []string{"navigation", "watchkeeping", "night sailing"}, eff.Skills)
	})

	t.Run("leg overrides replace risk and experience", func(t *testing.T) {
		eff := ResolveEffective(journey, Leg{RiskLevel: strPtr("offshore"), MinExperience: intPtr(5)})
		assert.Equal(t, "offshore", *eff.RiskLevel)
		assert.Equal(t, 5, *eff.MinExperience)
	})

	t.Run("explicit zero experience counts as an override", func(t *testing.T) {
		eff := ResolveEffective(journey, Leg{MinExperience: intPtr(0)})
		assert.Equal(t, 0, *eff.MinExperience)
	})

	t.Run("journey without defaults yields nils", func(t *testing.T) {
		eff := ResolveEffective(Journey{}, Leg{})
		assert.Empty(t, eff.Skills)
		assert.Nil(t, eff.RiskLevel)
		assert.Nil(t, eff.MinExperience)
	})
}

func TestSortRequirements(t *testing.T) {
	a := Requirement{QuestionText: "a", Order: 2}
	b := Requirement{QuestionText: "b", Order: 1}
	c := Requirement{QuestionText: "c", Order: 1}

	reqs := []Requirement{a, b, c}
	SortRequirements(reqs)

	assert.Equal(t, "a", reqs[2].QuestionText)
	// Equal Order values fall back to ID ordering, which is stable across
	// calls even if it is not the insertion order.
	assert.ElementsMatch(t, []string{"b", "c"}, []string{reqs[0].QuestionText, reqs[1].QuestionText})
}
