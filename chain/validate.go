package chain

// Report is the outcome of a chain audit
type Report struct {
	Errors []int
}

// OK reports whether the audit recorded no errors
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Count returns the number of recorded errors, duplicates included
func (r Report) Count() int {
	return len(r.Errors)
}

// audit cross-checks every block that has a follower. Per index it records
// an error when the block no longer matches its sealed hash and another one
// when its hash differs from the follower's previous-hash link, so the same
// index can appear twice. The newest block has no follower yet and is not
// covered by the pass.
func audit(blocks []*Block) Report {
	errs := []int{}
	for i := 0; i < len(blocks)-1; i++ {
		if !blocks[i].Valid() {
			errs = append(errs, i)
		}
		if blocks[i].Hash != blocks[i+1].PrevHash {
			errs = append(errs, i)
		}
	}
	return Report{Errors: errs}
}
