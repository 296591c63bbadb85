package contact

import "fmt"

// Kind tells which variant a Contact holds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPerson
	KindEmail
)

func (k Kind) String() string {
	switch k {
	case KindPerson:
		return "person"
	case KindEmail:
		return "email"
	default:
		return "unknown"
	}
}

// Contact is either a Person (name and phone) or an Email (an address).
// Build it with NewPerson or NewEmail; it cannot be changed afterwards.
type Contact struct {
	DefaultGreeting

	kind    Kind
	name    string
	phone   string
	address string
}

func NewPerson(name, phone string) Contact {
	return Contact{kind: KindPerson, name: name, phone: phone}
}

func NewEmail(address string) Contact {
	return Contact{kind: KindEmail, address: address}
}

func (c Contact) Kind() Kind {
	return c.kind
}

// Name is empty unless c is a person.
func (c Contact) Name() string {
	return c.name
}

// Phone is empty unless c is a person.
func (c Contact) Phone() string {
	return c.phone
}

// Address is empty unless c is an email.
func (c Contact) Address() string {
	return c.address
}

// Greet introduces a person by name and returns an email address unchanged.
// A zero Contact has no variant and greets with "". Contact never uses the
// embedded default greeting.
func (c Contact) Greet() string {
	switch c.kind {
	case KindPerson:
		return fmt.Sprintf("Hi, I'm %s!", c.name)
	case KindEmail:
		return c.address
	default:
		return ""
	}
}

func (c Contact) String() string {
	switch c.kind {
	case KindPerson:
		return fmt.Sprintf("person(%s, %s)", c.name, c.phone)
	case KindEmail:
		return fmt.Sprintf("email(%s)", c.address)
	default:
		return "contact(unknown)"
	}
}

var _ Greeter = Contact{}
