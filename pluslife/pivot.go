package pluslife

import "encoding/json"

// SamplingTimeKey is the column that carries a pivot row's grouping key.
const SamplingTimeKey = "samplingTime"

// PivotRow holds every channel's value at one sampling time.
type PivotRow struct {
	SamplingTime float64
	Values       map[Channel]float64
}

// Value reports the row's value for ch, if the row has one.
func (r PivotRow) Value(ch Channel) (float64, bool) {
	v, ok := r.Values[ch]
	return v, ok
}

// Columns flattens the row into the keyed form charting code expects:
// "samplingTime" plus one entry per channel key.
func (r PivotRow) Columns() map[string]float64 {
	out := make(map[string]float64, len(r.Values)+1)
	for ch, v := range r.Values {
		out[ch.Key()] = v
	}
	out[SamplingTimeKey] = r.SamplingTime

	return out
}

func (r PivotRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Columns())
}

// Pivot groups samples into one row per distinct sampling time. Times are
// compared exactly as produced by normalization, so values that differ only by
// floating point noise stay in separate rows. Rows come out in the order their
// sampling time was first seen, not sorted. When a channel appears twice at
// the same time, the later value wins.
func Pivot(samples []Sample) []PivotRow {
	rows := make([]PivotRow, 0)
	position := make(map[float64]int)

	for _, s := range samples {
		pos, exists := position[s.SamplingTime]
		if !exists {
			pos = len(rows)
			rows = append(rows, PivotRow{
				SamplingTime: s.SamplingTime,
				Values:       make(map[Channel]float64),
			})
			position[s.SamplingTime] = pos
		}

		rows[pos].Values[s.StartingChannel] = s.FirstChannelResult
	}

	return rows
}
