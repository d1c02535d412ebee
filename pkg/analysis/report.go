// Package analysis orchestrates a full structural analysis of a finite
// group: subgroup lattice enumeration, invariants, classification, and a
// structure description, assembled into a flat report record. Reports are
// cached by a fingerprint of the multiplication table.
package analysis

// Report is the flat analysis record produced for one group. Field names
// are stable: the JSON form is the CLI output, the HTTP response body, and
// the cached payload.
//
// NilpotencyClass and DerivedLength carry 0 both for the trivial group and
// for groups that are not nilpotent or not solvable; IsNilpotent and
// IsSolvable disambiguate.
type Report struct {
	Order                int    `json:"order"`
	StructureDescription string `json:"structure_description"`
	IsAbelian            bool   `json:"is_abelian"`
	IsDedekind           bool   `json:"is_dedekind"`
	IsHamiltonian        bool   `json:"is_hamiltonian"`
	IsSolvable           bool   `json:"is_solvable"`
	IsNilpotent          bool   `json:"is_nilpotent"`
	SubgroupCount        int    `json:"subgroup_count"`
	NormalSubgroupCount  int    `json:"normal_subgroup_count"`
	CenterOrder          int    `json:"center_order"`
	CenterStructure      string `json:"center_structure"`
	CommutatorOrder      int    `json:"commutator_order"`
	CommutatorStructure  string `json:"commutator_structure"`
	NilpotencyClass      int    `json:"nilpotency_class"`
	DerivedLength        int    `json:"derived_length"`
	Exponent             int    `json:"exponent"`
	CenterIndex          int    `json:"center_index"`
}
