package domain

// PullRequestRecord is one pull request of a result set
type PullRequestRecord struct {
	AuthorLogin string
	Number      int
	Title       string
	URL         string
}

// ResultSet is the ordered outcome of one fetch, in response order
type ResultSet []PullRequestRecord

// Len returns the number of records
func (r ResultSet) Len() int {
	return len(r)
}

// IsEmpty reports whether the set has no records
func (r ResultSet) IsEmpty() bool {
	return len(r) == 0
}

// Clone returns a copy that does not share the backing array
func (r ResultSet) Clone() ResultSet {
	if r == nil {
		return ResultSet{}
	}
	out := make(ResultSet, len(r))
	copy(out, r)
	return out
}
