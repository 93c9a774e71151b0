package library

import "fmt"

// Policy decides which record wins when several titles occur in one path.
type Policy string

const (
	// PolicyLongest prefers the longest lowercased title; list order breaks ties.
	// "Foo Show Redux" beats "Foo Show" for ".../Foo Show Redux S01E01.mkv".
	PolicyLongest Policy = "longest"

	// PolicyFirst takes the first matching record in list order.
	PolicyFirst Policy = "first"
)

// ParsePolicy maps a config value to a Policy. Empty selects PolicyLongest.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyLongest:
		return PolicyLongest, nil
	case PolicyFirst:
		return PolicyFirst, nil
	default:
		return "", fmt.Errorf("unknown match policy %q", s)
	}
}

// candidate is a matching record position and its lowercased title length.
type candidate struct {
	pos    int
	length int
}

// pick applies the policy to candidates. ok is false when there are none.
func (p Policy) pick(cands []candidate) (int, bool) {
	if len(cands) == 0 {
		return 0, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		switch p {
		case PolicyFirst:
			if c.pos < best.pos {
				best = c
			}
		default:
			if c.length > best.length || (c.length == best.length && c.pos < best.pos) {
				best = c
			}
		}
	}
	return best.pos, true
}
