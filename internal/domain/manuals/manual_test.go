package manuals

import "testing"

func TestCoverURLFor(t *testing.T) {
	cases := map[string]string{
		"/f/a.pdf":                          "/f/a.png",
		"https://cdn.example.com/m/b.PDF":   "https://cdn.example.com/m/b.png",
		"https://cdn.example.com/m/c.pdf?v": "https://cdn.example.com/m/c.png?v",
		"/f/noext":                          "/f/noext.png",
		"":                                  "",
	}
	for in, want := range cases {
		if got := CoverURLFor(in); got != want {
			t.Fatalf("CoverURLFor(%q): want=%q got=%q", in, want, got)
		}
	}
}
