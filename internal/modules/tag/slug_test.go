package tag

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Linear Algebra", want: "linear-algebra"},
		{in: "  C++  Notes  ", want: "c-notes"},
		{in: "already-slugged", want: "already-slugged"},
		{in: "MiXeD CaSe", want: "mixed-case"},
		{in: "---", want: ""},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
