// Package contact models a Contact that is either a person or an email
// address, and the Greeter capability it implements.
package contact

// DefaultGreetingText is what a Greeter says when it has nothing of its own.
const DefaultGreetingText = "Hello!"

// Greeter is anything that can greet.
type Greeter interface {
	Greet() string
}

// DefaultGreeting provides the default Greet. Embed it to declare support for
// Greeter; a Greet method on the embedding type takes precedence.
type DefaultGreeting struct{}

func (DefaultGreeting) Greet() string {
	return DefaultGreetingText
}
