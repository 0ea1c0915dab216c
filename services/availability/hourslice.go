// File: services/availability/hourslice.go
package availability

// hourSlice is one segment of a sliced create request, in minutes from midnight.
type hourSlice struct {
	Start int
	End   int
}

// sliceHours decomposes [start, end) into consecutive segments of at most one
// hour, measured from the requested start. The final segment may be shorter.
// Keeping the stored grain at one hour means later edits touch only the hours
// they cover.
func sliceHours(start, end int) []hourSlice {
	slices := make([]hourSlice, 0, (end-start+59)/60)
	for cur := start; cur < end; {
		next := cur + 60
		if next > end {
			next = end
		}
		slices = append(slices, hourSlice{Start: cur, End: next})
		cur = next
	}
	return slices
}
