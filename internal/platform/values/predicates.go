package values

// IsEmpty reports whether v is null, a zero-length string, or a collection
// without elements. Numbers are never empty.
func IsEmpty(v Value) bool {
	switch v.kind {
	case KindNull:
		return true
	case KindString, KindSequence, KindMapping, KindSet:
		return v.Len() == 0
	default:
		return false
	}
}

// IsNotEmpty is the negation of IsEmpty.
func IsNotEmpty(v Value) bool {
	return !IsEmpty(v)
}

// AreEqual reports whether a and b hold equal values. Two nulls are equal;
// a null never equals a non-null. Values of different kinds are unequal,
// except that integer and float numbers compare by numeric value.
func AreEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindString:
		return a.s == b.s
	case KindNumber:
		return compareNumbers(a, b) == 0
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !AreEqual(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.entries) != len(b.entries) {
			return false
		}
		for key, left := range a.entries {
			right, ok := b.entries[key]
			if !ok || !AreEqual(left, right) {
				return false
			}
		}
		return true
	case KindSet:
		if len(a.items) != len(b.items) {
			return false
		}
		for _, item := range a.items {
			if !containsEqual(b.items, item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
