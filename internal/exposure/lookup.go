package exposure

import (
	"github.com/alexanderramin/traworker/internal/domain"
)

// Table is the read-only reference table consulted by the pipeline.
// Implementations must be safe for concurrent readers.
type Table interface {
	Lookup(key string) (domain.ReferenceRow, bool)
}

// LookupKey builds the table descriptor for a scenario: process, physical
// state, inhalation LEV, fugacity band and population, with no separators.
// e.g. "PROC7liquidnovery lowind".
func LookupKey(s domain.Scenario) string {
	return string(s.Process) +
		string(s.PhysicalState) +
		domain.YesNo(s.InhalationLEV) +
		s.Fugacity.KeyToken() +
		s.Population.KeyToken()
}
