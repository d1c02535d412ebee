package lattice_test

import (
	"fmt"

	"github.com/matzehuels/dedekind/pkg/group"
	"github.com/matzehuels/dedekind/pkg/lattice"
)

func ExampleEnumerate() {
	g := group.Quaternion8()

	subs, err := lattice.Enumerate(g, lattice.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d subgroups, %d normal\n", len(subs), lattice.NormalCount(g, subs))
	// Output:
	// 6 subgroups, 6 normal
}
