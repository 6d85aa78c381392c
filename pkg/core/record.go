package core

// Deletion is one marker selected for removal.
type Deletion struct {
	Set   string `json:"set"`
	Key   string `json:"key"`
	Label string `json:"label"`
	X     int    `json:"x"`
	Z     int    `json:"z"`
}

type deletionKey struct {
	set string
	key string
}

// DeletionRecord collects deletions in the order they were found.
// A (set, key) pair is stored at most once.
type DeletionRecord struct {
	entries []Deletion
	index   map[deletionKey]int
}

// NewDeletionRecord returns an empty record.
func NewDeletionRecord() *DeletionRecord {
	return &DeletionRecord{index: make(map[deletionKey]int)}
}

// Add stores d unless its (set, key) is already recorded.
// It reports whether d was added.
func (r *DeletionRecord) Add(d Deletion) bool {
	k := deletionKey{set: d.Set, key: d.Key}
	if _, ok := r.index[k]; ok {
		return false
	}
	r.index[k] = len(r.entries)
	r.entries = append(r.entries, d)
	return true
}

// Contains reports whether key of set is recorded.
func (r *DeletionRecord) Contains(set, key string) bool {
	_, ok := r.index[deletionKey{set: set, key: key}]
	return ok
}

// Label returns the recorded label for key of set.
func (r *DeletionRecord) Label(set, key string) (string, bool) {
	i, ok := r.index[deletionKey{set: set, key: key}]
	if !ok {
		return "", false
	}
	return r.entries[i].Label, true
}

// Len returns the number of recorded deletions.
func (r *DeletionRecord) Len() int {
	return len(r.entries)
}

// Entries returns the deletions in insertion order.
func (r *DeletionRecord) Entries() []Deletion {
	return append([]Deletion(nil), r.entries...)
}
