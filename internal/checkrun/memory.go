package checkrun

// Memory holds check state across stage and aircraft switches within one
// session. It is keyed by aircraft and stage name and maps node texts to
// their checked state. It is never persisted; saving an aircraft's checklist
// from the editor drops that aircraft's entries wholesale.
type Memory struct {
	byAircraft map[string]map[string]map[string]bool
}

func NewMemory() *Memory {
	return &Memory{byAircraft: make(map[string]map[string]map[string]bool)}
}

// Snapshot records the checked texts for one stage, replacing any previous
// snapshot for that stage.
func (m *Memory) Snapshot(aircraft, stage string, checkedTexts map[string]bool) {
	stages, ok := m.byAircraft[aircraft]
	if !ok {
		stages = make(map[string]map[string]bool)
		m.byAircraft[aircraft] = stages
	}
	cp := make(map[string]bool, len(checkedTexts))
	for text, v := range checkedTexts {
		if v {
			cp[text] = true
		}
	}
	stages[stage] = cp
}

// Restore returns the snapshot for one stage, or nil when none exists.
func (m *Memory) Restore(aircraft, stage string) map[string]bool {
	return m.byAircraft[aircraft][stage]
}

// ClearAircraft drops every snapshot recorded for one aircraft.
func (m *Memory) ClearAircraft(aircraft string) {
	delete(m.byAircraft, aircraft)
}
