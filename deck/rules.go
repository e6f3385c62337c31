package deck

// ValidPlay reports whether candidate may be played on top of reference.
// A play is legal if the candidate is a wild, or shares the reference's
// color or type.
func ValidPlay(reference, candidate Card) bool {
	return candidate.Type.IsWild() ||
		candidate.Color == reference.Color ||
		candidate.Type == reference.Type
}
