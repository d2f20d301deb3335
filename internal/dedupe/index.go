package dedupe

import "sort"

// Member identifies one file inside a duplicate group.
type Member struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Group is a set of two or more files sharing a content fingerprint. Files
// with equal fingerprints are duplicates regardless of name.
type Group struct {
	Fingerprint string   `json:"fingerprint"`
	Members     []Member `json:"members"`
}

// Index accumulates fingerprint observations and resolves duplicate groups.
// It is not safe for concurrent use; workers each build their own index and
// the coordinator merges them after collection.
type Index struct {
	byFingerprint map[string][]Member
}

// NewIndex returns an empty fingerprint index.
func NewIndex() *Index {
	return &Index{byFingerprint: make(map[string][]Member)}
}

// Add records one observation of fingerprint for the named file.
func (idx *Index) Add(fingerprint string, member Member) {
	if fingerprint == "" {
		return
	}
	idx.byFingerprint[fingerprint] = append(idx.byFingerprint[fingerprint], member)
}

// Merge folds every observation from other into idx.
func (idx *Index) Merge(other *Index) {
	if other == nil {
		return
	}
	for fingerprint, members := range other.byFingerprint {
		idx.byFingerprint[fingerprint] = append(idx.byFingerprint[fingerprint], members...)
	}
}

// Groups returns every duplicate group (two or more members), ordered by
// fingerprint for stable output.
func (idx *Index) Groups() []Group {
	groups := make([]Group, 0)
	for fingerprint, members := range idx.byFingerprint {
		if len(members) < 2 {
			continue
		}
		groups = append(groups, Group{Fingerprint: fingerprint, Members: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Fingerprint < groups[j].Fingerprint
	})
	return groups
}
