package syntax

// StructuralEquals compares two elements by shape and text, ignoring
// identity and strict mode. Tokens compare kind, text and trivia.
func StructuralEquals(a, b Element) bool {
	a, b = normalize(a), normalize(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if ta, ok := a.(*Token); ok {
		tb, ok := b.(*Token)
		return ok && TokenStructuralEquals(ta, tb)
	}
	if a.ChildCount() != b.ChildCount() {
		return false
	}
	for i := range a.ChildCount() {
		if !StructuralEquals(a.ChildAt(i), b.ChildAt(i)) {
			return false
		}
	}
	return true
}

// TokenStructuralEquals compares kind, full width, text and both trivia lists.
func TokenStructuralEquals(a, b *Token) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.kind == b.kind &&
		a.FullWidth() == b.FullWidth() &&
		a.Text() == b.Text() &&
		a.LeadingTrivia().Equals(b.LeadingTrivia()) &&
		a.TrailingTrivia().Equals(b.TrailingTrivia())
}
