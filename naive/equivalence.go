package naive

import "strconv"

// equivalentClasses groups row indices [0, len(rows)) into maximal sets
// whose rows compare equal, preserving each class's first-seen order.
// Specialized to the 0/1 membership rows primeParts builds from the
// implication matrix.
func equivalentClasses(rows [][]int) [][]int {
	firstSeen := make(map[string]int)
	var out [][]int
	for i, row := range rows {
		k := encodeRow(row)
		if idx, ok := firstSeen[k]; ok {
			out[idx] = append(out[idx], i)
			continue
		}
		firstSeen[k] = len(out)
		out = append(out, []int{i})
	}
	return out
}

func encodeRow(row []int) string {
	b := make([]byte, 0, len(row)*3)
	for _, v := range row {
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, ',')
	}
	return string(b)
}
