package listview

import "sort"

// ApplySort orders records by the key derived from keyFn. Records whose
// key is missing (ok == false) sort to the end in both directions. The
// sort is stable, so records with equal keys keep their original
// relative order. SortNone returns the input slice untouched.
func ApplySort[R any](records []R, order SortOrder, keyFn func(R) (int64, bool)) []R {
	if order == SortNone || keyFn == nil {
		return records
	}

	out := make([]R, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		ki, iOK := keyFn(out[i])
		kj, jOK := keyFn(out[j])
		if iOK != jOK {
			// Missing keys always lose, regardless of direction.
			return iOK
		}
		if !iOK {
			return false
		}
		if order == SortAsc {
			return ki < kj
		}
		return ki > kj
	})
	return out
}
