package cli

import "testing"

func TestDefaultOutputName(t *testing.T) {
	cases := []struct {
		names []string
		want  string
	}{
		{[]string{"Ada Lovelace"}, "pedigree_ada_lovelace.log"},
		{[]string{"Ada Lovelace", "Alan Turing"}, "pedigree.log"},
		{[]string{"Søren Kierkegaard"}, "pedigree_soren_kierkegaard.log"},
	}
	for _, tc := range cases {
		if got := defaultOutputName(tc.names); got != tc.want {
			t.Fatalf("defaultOutputName(%v) = %q, want %q", tc.names, got, tc.want)
		}
	}
}
