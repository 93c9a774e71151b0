package library

import (
	"sort"

	"github.com/vmunix/arrpath/pkg/arr"
)

// Index answers "which titles occur in this path" without scanning every
// record. Lowercased titles are grouped by byte length; a lookup slides one
// window per distinct length over the lowercased path and probes a hash map.
type Index struct {
	files   []arr.FileRecord
	policy  Policy
	byLen   map[int]map[string][]int // title length -> lowercased title -> record positions
	lengths []int                    // ascending
}

// NewIndex builds an index over files. Positions refer to files' order.
func NewIndex(files []arr.FileRecord, policy Policy) *Index {
	ix := &Index{
		files:  files,
		policy: policy,
		byLen:  make(map[int]map[string][]int),
	}
	for i := range files {
		if !matchable(&files[i]) {
			continue
		}
		title := Lower(files[i].Title)
		bucket, ok := ix.byLen[len(title)]
		if !ok {
			bucket = make(map[string][]int)
			ix.byLen[len(title)] = bucket
			ix.lengths = append(ix.lengths, len(title))
		}
		bucket[title] = append(bucket[title], i)
	}
	sort.Ints(ix.lengths)
	return ix
}

// Files returns the records the index was built from.
func (ix *Index) Files() []arr.FileRecord {
	return ix.files
}

// Lookup returns the record chosen by the index policy, or nil.
func (ix *Index) Lookup(path string) *arr.FileRecord {
	if path == "" {
		return nil
	}
	pos, ok := ix.policy.pick(ix.candidates(Lower(path)))
	if !ok {
		return nil
	}
	return &ix.files[pos]
}

func (ix *Index) candidates(lowered string) []candidate {
	var cands []candidate
	seen := make(map[string]struct{})
	for _, n := range ix.lengths {
		if n > len(lowered) {
			break
		}
		bucket := ix.byLen[n]
		for i := 0; i+n <= len(lowered); i++ {
			key := lowered[i : i+n]
			positions, ok := bucket[key]
			if !ok {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			for _, p := range positions {
				cands = append(cands, candidate{pos: p, length: n})
			}
		}
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].pos < cands[j].pos })
	return cands
}
