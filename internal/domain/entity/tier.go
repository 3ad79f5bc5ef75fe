package entity

// Tier is the player's power ladder: Small < Big < Fire
type Tier int

const (
	TierSmall Tier = iota
	TierBig
	TierFire
)

// String returns the tier name
func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierBig:
		return "big"
	case TierFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Demote returns the tier one step down. ok is false for Small,
// where damage costs a life instead.
func (t Tier) Demote() (next Tier, ok bool) {
	switch t {
	case TierFire:
		return TierBig, true
	case TierBig:
		return TierSmall, true
	default:
		return TierSmall, false
	}
}

// IsBig reports whether the player has the tall body
func (t Tier) IsBig() bool {
	return t >= TierBig
}
