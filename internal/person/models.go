package person

// Document is an identity document owned by exactly one Person.
type Document struct {
	Number string `json:"number"`
}

// NewDocument returns a Document carrying the given number.
func NewDocument(number string) Document {
	return Document{Number: number}
}

// String renders the document as its number.
func (d Document) String() string {
	return d.Number
}

// Clone returns an independent copy of d.
func (d Document) Clone() Document {
	return Document{Number: d.Number}
}

// Person owns its Document by value; a Person always has exactly one.
type Person struct {
	Name     string   `json:"name"`
	Document Document `json:"document"`
}

func NewPerson(name string, doc Document) Person {
	return Person{Name: name, Document: doc}
}

// String renders "<name> <document number>".
func (p Person) String() string {
	return p.Name + " " + p.Document.String()
}

// Clone deep-copies p, including the nested Document.
func (p Person) Clone() Person {
	return Person{
		Name:     p.Name,
		Document: p.Document.Clone(),
	}
}
