package flaggo

// A predicate over the raw value of a flag enumeration, usable with Set.Is.
type Match[E Flag] func(value E) bool

func MatchAll[E Flag](test E) Match[E] {
	return func(value E) bool {
		return value&test == test
	}
}

func MatchOnly[E Flag](test E) Match[E] {
	return func(value E) bool {
		return value&test == value
	}
}

func MatchExact[E Flag](test E) Match[E] {
	return func(value E) bool {
		return value == test
	}
}

func MatchAny[E Flag](test E) Match[E] {
	return func(value E) bool {
		return value&test != 0
	}
}

func MatchNone[E Flag](test E) Match[E] {
	return func(value E) bool {
		return value&test == 0
	}
}

func MatchEmpty[E Flag]() Match[E] {
	return func(value E) bool {
		return value == 0
	}
}

func MatchNot[E Flag](not Match[E]) Match[E] {
	return func(value E) bool {
		return !not(value)
	}
}

func MatchAnd[E Flag](ands ...Match[E]) Match[E] {
	return func(value E) bool {
		for _, and := range ands {
			if !and(value) {
				return false
			}
		}
		return true
	}
}

func MatchOr[E Flag](ors ...Match[E]) Match[E] {
	return func(value E) bool {
		for _, or := range ors {
			if or(value) {
				return true
			}
		}
		return false
	}
}
