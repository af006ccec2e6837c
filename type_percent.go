package finplan

import "fmt"

// Percent is a percentage, 100 meaning the whole.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Rounded returns the percentage with one decimal, as shown on goal cards.
func (p Percent) Rounded() string {
	return fmt.Sprintf("%.1f%%", p)
}

// clampPercent bounds p to [0, 100].
func clampPercent(p float64) Percent {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return Percent(p)
	}
}
