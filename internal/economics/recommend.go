package economics

import (
	"fmt"

	"github.com/sells-group/gonogo-cli/internal/model"
)

// Per-channel margin thresholds for the advisory string. Quick commerce runs
// lower thresholds than e-commerce: its bundled commission already absorbs
// logistics, so a thinner margin is survivable there.
var channelThresholds = map[model.Channel]struct{ strong, workable float64 }{
	model.ChannelEcommerce:     {strong: 20, workable: 12},
	model.ChannelQuickCommerce: {strong: 15, workable: 8},
	model.ChannelD2C:           {strong: 25, workable: 15},
}

// recommend produces the rule-based channel advisory for a margin.
func recommend(channel model.Channel, marginPct float64) string {
	th, ok := channelThresholds[channel]
	if !ok {
		th = channelThresholds[model.ChannelEcommerce]
	}
	switch {
	case marginPct >= th.strong:
		return fmt.Sprintf("%s margins are healthy at %.1f%%; the channel can absorb scale-up costs.", channel, marginPct)
	case marginPct >= th.workable:
		return fmt.Sprintf("%s margins are workable at %.1f%%; optimize costs before committing marketing spend.", channel, marginPct)
	default:
		return fmt.Sprintf("%s margins are challenged at %.1f%%; revisit pricing or switch channels before launch.", channel, marginPct)
	}
}
