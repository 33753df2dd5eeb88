package inventory

// Tier is an ordinal urgency classification, most urgent first
type Tier string

const (
	TierCritical Tier = "critical"
	TierWarning  Tier = "warning"
	TierWatch    Tier = "watch"
	TierHealthy  Tier = "healthy"
)

var tierOrder = []Tier{TierCritical, TierWarning, TierWatch, TierHealthy}

// Classify maps days of stock remaining to a tier
func Classify(daysLeft int) Tier {
	switch {
	case daysLeft <= 0:
		return TierCritical
	case daysLeft <= 7:
		return TierWarning
	case daysLeft <= 14:
		return TierWatch
	default:
		return TierHealthy
	}
}
