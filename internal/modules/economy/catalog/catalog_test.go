package catalog

import (
	"testing"

	"github.com/frankieli/roulette/internal/modules/economy/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "safe", items[0].Name)
	assert.Equal(t, "course", items[1].Name)
	assert.Equal(t, "portfolio", items[2].Name)

	safe, ok := c.Lookup("SAFE")
	require.True(t, ok)
	assert.Equal(t, int64(500), safe.Price)
	assert.Equal(t, domain.EffectSavingsRate, safe.Effect)
	assert.Equal(t, "0.005", safe.Value.String())

	course, _ := c.Lookup("course")
	assert.Equal(t, int64(300), course.Price)
	assert.Equal(t, domain.EffectWorkMultiplier, course.Effect)
	assert.Equal(t, "0.2", course.Value.String())

	_, ok = c.Lookup("yacht")
	assert.False(t, ok)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad yaml":   "items: [",
		"no name":    "items:\n  - price: 1\n    effect: savings_rate\n    value: \"1\"\n",
		"zero price": "items:\n  - name: a\n    price: 0\n    effect: savings_rate\n    value: \"1\"\n",
		"bad effect": "items:\n  - name: a\n    price: 1\n    effect: luck\n    value: \"1\"\n",
		"bad value":  "items:\n  - name: a\n    price: 1\n    effect: savings_rate\n    value: lots\n",
		"duplicate":  "items:\n  - {name: a, price: 1, effect: savings_rate, value: \"1\"}\n  - {name: A, price: 2, effect: savings_rate, value: \"1\"}\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
