package route

import "testing"

func TestNavigatorFunc(t *testing.T) {
	var got []Route
	var nav Navigator = NavigatorFunc(func(r Route) { got = append(got, r) })

	nav.Navigate(Desktop)
	nav.Navigate(Letter)

	if len(got) != 2 || got[0] != Desktop || got[1] != Letter {
		t.Fatalf("navigations = %v, want [desktop letter]", got)
	}
}

func TestRouteString(t *testing.T) {
	cases := map[Route]string{Lock: "lock", Desktop: "desktop", Letter: "letter", Route(9): "route(9)"}
	for r, want := range cases {
		if got := r.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
