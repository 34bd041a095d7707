package out

import "fmt"

var Outputter OutputterInterface = &TerminalOutputter{}

func Print(message string) {
	Outputter.Print(message)
}

type OutputterInterface interface {
	Print(message string)
}

type TerminalOutputter struct{}

func (o *TerminalOutputter) Print(message string) {
	fmt.Print(message)
}

// BufferOutputter collects everything printed, for tests.
type BufferOutputter struct {
	buffer string
}

func (o *BufferOutputter) Print(message string) {
	o.buffer += message
}

func (o *BufferOutputter) String() string {
	return o.buffer
}
