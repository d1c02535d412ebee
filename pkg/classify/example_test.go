package classify_test

import (
	"fmt"

	"github.com/matzehuels/dedekind/pkg/classify"
	"github.com/matzehuels/dedekind/pkg/group"
)

func ExampleDescribe() {
	for _, d := range []string{"c12", "q8", "d4", "q8xc2"} {
		g, err := group.FromDescriptor(d)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s: %s\n", d, classify.Describe(g))
	}
	// Output:
	// c12: cyclic group C12
	// q8: quaternion group Q8
	// d4: dihedral group D4
	// q8xc2: direct product Q8 x C2
}
