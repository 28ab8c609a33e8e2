package ros

import "sort"

// Contains reports whether key is in array.
func Contains(array []string, key string) bool {
	for _, item := range array {
		if item == key {
			return true
		}
	}
	return false
}

// SetDifference returns the items of lhs missing from rhs, sorted.
func SetDifference(lhs []string, rhs []string) []string {
	left := map[string]bool{}
	for _, item := range lhs {
		left[item] = true
	}
	for _, item := range rhs {
		delete(left, item)
	}
	return sortedKeys(left)
}

func sortedKeys(set map[string]bool) []string {
	result := make([]string, 0, len(set))
	for k := range set {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
