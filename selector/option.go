package selector

// Option describes one selectable choice supplied by the embedding
// application. Options are plain descriptors: the widget copies what it
// needs at ingestion time and never retains or mutates the supplied slice.
type Option struct {
	// Label is the text shown for the option and the string matched by
	// combobox filtering.
	Label string

	// Value identifies the option in change notifications. When empty, the
	// label is used.
	Value string

	// Description is optional secondary text rendered after the label in
	// the dropdown.
	Description string

	// Selected marks the option as pre-selected at ingestion time.
	Selected bool
}

// record is the widget's internal copy of one ingested option.
type record struct {
	label       string
	value       string
	description string
	selected    bool
	index       int
}

// SetOptions replaces the entire option list with records built from opts.
// Descriptors with neither a label nor a value are skipped; the rest are
// indexed by their position among the kept descriptors, so every ingestion
// reassigns all indexes.
//
// When at least one descriptor is marked Selected, the selection is seeded
// from those flags: single-select adopts the first selected descriptor,
// multi-select adopts all of them. Otherwise the existing selection is kept
// where it still lands on a record in the new list, and stale indexes are
// cleared without emitting a change notification.
func (m *Model) SetOptions(opts []Option) {
	prevSingle := m.selected
	prevMulti := m.scanSelected()

	records := make([]record, 0, len(opts))
	seeded := false
	firstSeed := -1
	for _, o := range opts {
		if o.Label == "" && o.Value == "" {
			continue
		}
		r := record{
			label:       o.Label,
			value:       o.Value,
			description: o.Description,
			index:       len(records),
		}
		if r.value == "" {
			r.value = r.label
		}
		if o.Selected {
			seeded = true
			if firstSeed == -1 {
				firstSeed = r.index
			}
			if m.mode == Multi {
				r.selected = true
			}
		}
		records = append(records, r)
	}
	m.records = records

	switch {
	case seeded && m.mode == Single:
		m.setSingle(firstSeed)
	case seeded:
		m.selected = -1
	case m.mode == Single:
		if prevSingle >= 0 && prevSingle < len(records) {
			m.setSingle(prevSingle)
		} else {
			m.selected = -1
		}
	default:
		for _, idx := range prevMulti {
			if idx < len(records) {
				m.records[idx].selected = true
			}
		}
	}

	m.refilter()
	if m.open {
		m.resetActive()
		m.adjustScroll()
	} else {
		m.active = -1
		m.offset = 0
	}
	m.logger.Debug("options replaced", "count", len(records))
}

// Options returns a snapshot of the current option list with live selected
// flags. Mutating the returned slice does not affect the widget.
func (m *Model) Options() []Option {
	opts := make([]Option, len(m.records))
	for i, r := range m.records {
		opts[i] = Option{
			Label:       r.label,
			Value:       r.value,
			Description: r.description,
			Selected:    r.selected,
		}
	}
	return opts
}

// Len returns the number of ingested options.
func (m *Model) Len() int {
	return len(m.records)
}

// scanSelected walks the full option list and returns the indexes of all
// selected records in ascending order.
func (m *Model) scanSelected() []int {
	var idxs []int
	for _, r := range m.records {
		if r.selected {
			idxs = append(idxs, r.index)
		}
	}
	return idxs
}

// selectedLabels returns the labels of all selected records in ascending
// index order.
func (m *Model) selectedLabels() []string {
	var labels []string
	for _, r := range m.records {
		if r.selected {
			labels = append(labels, r.label)
		}
	}
	return labels
}

// setSingle makes idx the sole selection, mirroring the record flags.
func (m *Model) setSingle(idx int) {
	m.selected = idx
	for i := range m.records {
		m.records[i].selected = i == idx
	}
}
