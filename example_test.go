package ember

import (
	"fmt"
	"os"
)

func Example() {
	s := New()

	var exc Exception
	s.Guard(&exc, MaskError, func() {
		// open file
		file, err := os.Open("missing.txt")
		if err != nil {
			s.ThrowError(NotFoundError, "open: %s", "missing.txt")
		}

		// ensure close
		s.Cleanups().Register(func() {
			_ = file.Close()
		})
	})

	fmt.Println(exc.Reason, exc.Code, exc.Message)

	// Output:
	// error not found open: missing.txt
}

func ExampleStack_Guard() {
	s := New()

	var outer Exception
	s.Guard(&outer, MaskAll, func() {
		s.Cleanups().Register(func() {
			fmt.Println("release outer")
		})

		s.Guard(nil, MaskInterrupt, func() {
			s.Cleanups().Register(func() {
				fmt.Println("release inner")
			})

			s.ThrowError(GenericError, "failed")
		})
	})

	fmt.Println(outer.Message)

	// Output:
	// release inner
	// release outer
	// failed
}
