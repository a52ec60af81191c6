package literal_test

import (
	"fmt"

	"shapecheck/literal"
)

func Example() {
	for _, text := range []string{"5", "-5", "5.2", "-5.2", "0"} {
		n, err := literal.Parse(text)
		if err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Println(n, "->", n.Class())
	}
	// Output:
	// 5 -> integer+positive
	// -5 -> integer+negative
	// 5.2 -> positive
	// -5.2 -> negative
	// 0 -> integer+positive
}
