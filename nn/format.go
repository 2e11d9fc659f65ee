package nn

import "fmt"

// Format prints n exactly as its representation prints.
func (n NN[P, E]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), n.ptr)
}
