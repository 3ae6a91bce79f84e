package entity

import "fmt"

// Tier selects how much metadata NewFile loads for a file.
type Tier int

const (
	// TierFast loads only path-derived fields; no stat calls.
	TierFast Tier = iota + 1
	// TierRegular adds size and access/creation/modification times.
	TierRegular
	// TierSlow adds a hash of the full file content.
	TierSlow
)

// String returns the tier's configuration name.
func (t Tier) String() string {
	switch t {
	case TierFast:
		return "fast"
	case TierRegular:
		return "regular"
	case TierSlow:
		return "slow"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier converts a configuration string to a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "fast":
		return TierFast, nil
	case "regular":
		return TierRegular, nil
	case "slow":
		return TierSlow, nil
	default:
		return 0, fmt.Errorf("unknown tier %q (want fast, regular or slow)", s)
	}
}
