// internal/debate/topics.go
package debate

// Topic names, in narrative order. Opening and closing are moderator-only
// bookends; every other topic runs the full six-turn template.
const (
	TopicOpening     = "opening"
	TopicGeopolitics = "geopolitics"
	TopicEarnings    = "earnings"
	TopicMacro       = "macro"
	TopicCommodities = "commodities"
	TopicCrypto      = "crypto"
	TopicRegional    = "regional"
	TopicStrategy    = "strategy"
	TopicClosing     = "closing"
)

// Topics returns the emission order.
func Topics() []string {
	return []string{
		TopicOpening,
		TopicGeopolitics,
		TopicEarnings,
		TopicMacro,
		TopicCommodities,
		TopicCrypto,
		TopicRegional,
		TopicStrategy,
		TopicClosing,
	}
}
