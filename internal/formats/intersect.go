package formats

import (
	"cmp"
	"slices"
	"strconv"

	"blobdl/internal/domain/consts"
	"blobdl/internal/domain/enums"

	"github.com/samber/lo"
)

// PerItemOptions are the two pseudo-options that bypass the intersection:
// every item independently picks its own best or worst format.
func PerItemOptions() []Option {
	return []Option{
		{Label: consts.BestPerItemOption, Selection: BestQuality()},
		{Label: consts.WorstPerItemOption, Selection: WorstQuality()},
	}
}

// Intersect returns the options usable for every item of the batch: the two
// per-item pseudo-options followed by each format id common to all catalogs,
// filtered by kind and labelled from the first catalog.
func Intersect(catalogs []Catalog, kind enums.MediaKind) []Option {
	opts := PerItemOptions()

	common := CommonIDs(catalogs)
	if len(common) == 0 {
		return opts
	}

	first := catalogs[0]
	for _, id := range common {
		// Ids are unique within a catalog, so at most one descriptor matches.
		for _, f := range first.Formats {
			if f.ID != id || !f.Eligible(kind) {
				continue
			}
			if label, ok := f.Label(); ok {
				opts = append(opts, Option{Label: label, Selection: UniqueFormat(id)})
			}
		}
	}
	return opts
}

// CommonIDs returns the sorted ids present verbatim in every catalog. An empty
// batch, or a batch containing an empty catalog, has no common ids.
func CommonIDs(catalogs []Catalog) []string {
	if len(catalogs) == 0 {
		return nil
	}
	if lo.SomeBy(catalogs, func(c Catalog) bool { return c.Empty() }) {
		return nil
	}

	common := sortedIDs(catalogs[0])
	for _, c := range catalogs[1:] {
		common = mergeIntersect(common, sortedIDs(c))
		if len(common) == 0 {
			return nil
		}
	}
	return common
}

func sortedIDs(c Catalog) []string {
	ids := lo.Uniq(c.IDs())
	slices.SortStableFunc(ids, compareIDs)
	return ids
}

// mergeIntersect intersects two lists sorted by compareIDs.
func mergeIntersect(a, b []string) []string {
	out := make([]string, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := compareIDs(a[i], b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// compareIDs orders numeric ids numerically and everything else lexically,
// numeric ids first.
func compareIDs(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
