package services

import (
	"sort"
	"time"
)

// TimelineItem is one entry of any kind placed on the merged timeline.
type TimelineItem struct {
	Kind       string
	OccurredAt time.Time
	Entry      any
}

// TagEntries wraps one homogeneous collection with its kind tag so it can be
// merged with collections of other kinds.
func TagEntries[T any](kind string, entries []T, entryTime func(T) time.Time) []TimelineItem {
	items := make([]TimelineItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, TimelineItem{Kind: kind, OccurredAt: entryTime(entry), Entry: entry})
	}
	return items
}

// MergeTimeline flattens the tagged groups into one newest-first sequence.
// Relative order between items with identical timestamps is unspecified.
func MergeTimeline(groups ...[]TimelineItem) []TimelineItem {
	total := 0
	for _, group := range groups {
		total += len(group)
	}

	merged := make([]TimelineItem, 0, total)
	for _, group := range groups {
		merged = append(merged, group...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OccurredAt.After(merged[j].OccurredAt)
	})
	return merged
}
