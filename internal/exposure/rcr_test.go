package exposure

import (
	"testing"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeRCRs(t *testing.T) {
	e := Exposures{
		Inhalation8hr: domain.Number(5),
		Dermal8hr:     domain.Number(1.37),
		ShortTerm:     domain.Number(20),
		LocalDermal:   domain.Number(1000),
	}
	limits := domain.Limits{
		LongTermInhalation:  domain.LimitOf(10),
		LongTermDermal:      domain.LimitOf(10),
		ShortTermInhalation: domain.LimitOf(10),
		LocalDermal:         domain.LimitOf(10),
	}

	r := ComputeRCRs(e, limits, 2)
	assert.Equal(t, domain.Number(0.5), r.LongTermInhalation)
	assert.Equal(t, domain.Number(0.14), r.LongTermDermal)
	assert.Equal(t, domain.Number(2), r.ShortTermInhalation)
	assert.Equal(t, domain.Number(100), r.LocalDermal)
}

func TestComputeRCRs_ZeroOrMissingLimit(t *testing.T) {
	e := Exposures{
		Inhalation8hr: domain.Number(5),
		Dermal8hr:     domain.Number(1),
		ShortTerm:     domain.Number(20),
		LocalDermal:   domain.Number(3),
	}
	limits := domain.Limits{
		LongTermInhalation:  domain.LimitOf(0),
		LongTermDermal:      domain.NoLimit(),
		ShortTermInhalation: domain.LimitOf(0),
		LocalDermal:         domain.LimitOf(0),
	}

	r := ComputeRCRs(e, limits, 2)
	assert.Equal(t, domain.NotApplicable(), r.LongTermInhalation)
	assert.Equal(t, domain.NotApplicable(), r.LongTermDermal)
	assert.Equal(t, domain.NotApplicable(), r.ShortTermInhalation)
	assert.Equal(t, domain.NotApplicable(), r.LocalDermal)
}

func TestComputeRCRs_SentinelNumerators(t *testing.T) {
	e := Exposures{
		Inhalation8hr: domain.InvalidInput(),
		Dermal8hr:     domain.NotApplicable(),
		ShortTerm:     domain.NotApplicable(),
		LocalDermal:   domain.NotApplicable(),
	}
	limits := domain.Limits{
		LongTermInhalation:  domain.LimitOf(1),
		LongTermDermal:      domain.LimitOf(1),
		ShortTermInhalation: domain.LimitOf(1),
		LocalDermal:         domain.LimitOf(1),
	}

	r := ComputeRCRs(e, limits, 2)
	assert.Equal(t, domain.NotApplicable(), r.LongTermInhalation)
	assert.Equal(t, domain.NotApplicable(), r.LongTermDermal)
	assert.Equal(t, domain.NotApplicable(), r.ShortTermInhalation)
	assert.Equal(t, domain.NotApplicable(), r.LocalDermal)
	assert.True(t, r.Acceptable())
}

func TestExceeds(t *testing.T) {
	assert.True(t, Exceeds(domain.Number(1.01)))
	assert.False(t, Exceeds(domain.Number(1)))
	assert.False(t, Exceeds(domain.NotApplicable()))
}
