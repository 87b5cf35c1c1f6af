package shape

// Resolve strips optional, union and container layers off s and returns the
// underlying shape together with its element shape, if any.
//
// Unions are resolved by trying each alternative in declaration order; the
// first one that resolves to a concrete shape wins. A union of several records
// therefore resolves to the first record listed. When no alternative is
// concrete the result is null if every alternative is null, otherwise unknown.
//
// Sequences and mappings are returned as they are, with their first type
// argument as the element.
func Resolve(s *Shape) (underlying, elem *Shape) {
	if s == nil {
		return UnknownShape(), nil
	}

	switch s.Kind {
	case Union:
		allNull := len(s.Args) > 0
		for _, alt := range s.Args {
			u, e := Resolve(alt)
			if u.IsConcrete() {
				return u, e
			}
			if u.Kind != Null {
				allNull = false
			}
		}
		if allNull {
			return NullShape(), nil
		}
		return UnknownShape(), nil

	case Sequence, Mapping:
		if len(s.Args) == 0 || s.Args[0] == nil {
			return s, UnknownShape()
		}
		return s, s.Args[0]

	default:
		return s, nil
	}
}
