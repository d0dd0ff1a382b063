package pluslife

import (
	"fmt"
	"strconv"
)

// Key is the column name the channel's values appear under in a pivot row.
func (c Channel) Key() string {
	return strconv.Itoa(int(c))
}

// Name is the display name used for legends: channels are numbered from 1 on
// screen, and the control channel says so.
func (c Channel) Name() string {
	if c == ControlChannel {
		return fmt.Sprintf("Channel %d (control)", int(c)+1)
	}

	return fmt.Sprintf("Channel %d", int(c)+1)
}

// Channels returns the distinct channels present in samples, in the order each
// was first seen.
func Channels(samples []Sample) []Channel {
	seen := make(map[Channel]struct{})
	out := make([]Channel, 0)

	for _, s := range samples {
		if _, exists := seen[s.StartingChannel]; exists {
			continue
		}
		seen[s.StartingChannel] = struct{}{}
		out = append(out, s.StartingChannel)
	}

	return out
}
