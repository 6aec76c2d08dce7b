package sync

import "github.com/mesh-intelligence/logbook/internal/tabular"

// MergeByID reconciles two row sets after a write conflict: the union keyed
// by id, with remote rows first in their original order and local rows
// replacing same-id rows in place. New local ids append in local order. A
// record edited on both sides resolves to the local field values wholesale;
// concurrent edits to different ids are never lost.
func MergeByID(remote, local []tabular.Row) []tabular.Row {
	merged := make([]tabular.Row, 0, len(remote)+len(local))
	index := make(map[string]int, len(remote))

	for _, r := range remote {
		index[r["id"]] = len(merged)
		merged = append(merged, r)
	}
	for _, l := range local {
		if i, ok := index[l["id"]]; ok {
			merged[i] = l
			continue
		}
		index[l["id"]] = len(merged)
		merged = append(merged, l)
	}
	return merged
}
