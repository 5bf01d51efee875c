package person

// Cloner is implemented by values that can produce an independent deep copy.
type Cloner[T any] interface {
	Clone() T
}

var (
	_ Cloner[Document] = Document{}
	_ Cloner[Person]   = Person{}
)

// CloneAll deep-copies every element of in. A nil slice stays nil.
func CloneAll[T Cloner[T]](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, v.Clone())
	}
	return out
}
