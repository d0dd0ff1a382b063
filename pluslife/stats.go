package pluslife

import (
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// ChannelStat summarizes one channel's fluorescence curve.
type ChannelStat struct {
	Channel Channel
	Points  int
	First   float64
	Last    float64
	Min     float64
	Max     float64
	Mean    float64
}

// ChannelStats describes each channel's curve after pivoting, so overwritten
// duplicates are not counted. Channels are reported in first-seen order.
func ChannelStats(samples []Sample) ([]ChannelStat, error) {
	rows := Pivot(samples)
	out := make([]ChannelStat, 0)

	for _, ch := range Channels(samples) {
		var curve stats.Float64Data
		for _, row := range rows {
			if v, ok := row.Value(ch); ok {
				curve = append(curve, v)
			}
		}

		entry := ChannelStat{
			Channel: ch,
			Points:  curve.Len(),
			First:   curve.Get(0),
			Last:    curve.Get(curve.Len() - 1),
		}

		var err error
		if entry.Min, err = curve.Min(); err != nil {
			return nil, pfx.Err(err)
		}
		if entry.Max, err = curve.Max(); err != nil {
			return nil, pfx.Err(err)
		}
		if entry.Mean, err = curve.Mean(); err != nil {
			return nil, pfx.Err(err)
		}

		out = append(out, entry)
	}

	return out, nil
}
