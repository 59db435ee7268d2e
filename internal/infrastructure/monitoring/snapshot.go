package monitoring

// Snapshot holds totals across all label values, for logging at exit
type Snapshot struct {
	Runs           float64
	Errors         float64
	DroppedValues  float64
	ReplacedValues float64
	EmptyInputs    float64
}

// Snapshot sums the counters of m
func (m *Metrics) Snapshot() (Snapshot, error) {
	var snap Snapshot

	families, err := m.Gather()
	if err != nil {
		return snap, err
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value := metric.GetCounter().GetValue()
			switch mf.GetName() {
			case "dataproc_runs_total":
				snap.Runs += value
				for _, label := range metric.GetLabel() {
					if label.GetName() == "status" && label.GetValue() == StatusError {
						snap.Errors += value
					}
				}
			case "dataproc_dropped_values_total":
				snap.DroppedValues += value
			case "dataproc_replaced_values_total":
				snap.ReplacedValues += value
			case "dataproc_empty_inputs_total":
				snap.EmptyInputs += value
			}
		}
	}

	return snap, nil
}
