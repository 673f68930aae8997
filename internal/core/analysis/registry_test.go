package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radar/internal/core/domain"
)

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	for _, d := range domain.AllDomains() {
		a, err := r.Get(d)
		require.NoError(t, err)
		assert.Equal(t, d, a.Domain())
	}

	_, err := r.Get(domain.Domain("taxes"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedDomain))
}

func TestRegistry_Domains(t *testing.T) {
	assert.Equal(t, domain.AllDomains(), NewRegistry().Domains())
	assert.Equal(t, []domain.Domain{domain.DomainMarket}, NewRegistryFrom(MarketProfile()).Domains())
}

func TestRegistryFrom_LaterProfileWins(t *testing.T) {
	strict := MarketProfile()
	strict.Policy.Thresholds = Thresholds{Yellow: 1, Red: 1}

	r := NewRegistryFrom(MarketProfile(), strict)
	a, err := r.Get(domain.DomainMarket)
	require.NoError(t, err)

	v := a.Analyze(domain.AnswerSet{"sales_volume": "0"})
	assert.Equal(t, domain.ZoneRed, v.Zone)
}
