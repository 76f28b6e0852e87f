package callback

import "testing"

func TestRoundTrip(t *testing.T) {
	cases := []MenuCallback{
		{Level: 0, MenuName: "main", Page: 1},
		{Level: 1, MenuName: "catalog", Page: 1},
		{Level: 2, MenuName: "Пельмени", Category: 7, Page: 3},
		{Level: 3, MenuName: "increment", Page: 2, ProductID: 15},
		{Level: 5, MenuName: "pickfrom_Центральный", Page: 1},
	}

	for _, want := range cases {
		got, err := Unpack(want.Pack())
		if err != nil {
			t.Fatalf("%+v: unpack failed: %v", want, err)
		}
		if got != want {
			t.Fatalf("round trip mismatch: packed %+v, unpacked %+v", want, got)
		}
	}
}

func TestPageDefaultsToOne(t *testing.T) {
	cd := MenuCallback{Level: 3, MenuName: "cart"}

	got, err := Unpack(cd.Pack())
	if err != nil {
		t.Fatalf("unpack failed: %v", err)
	}
	if got.Page != 1 {
		t.Fatalf("Page = %d, want default 1", got.Page)
	}
}

func TestUnpackRejectsForeignData(t *testing.T) {
	for _, data := range []string{
		"",
		"Delivery_address",
		"category_3",
		"menu:x:main::1:",
		"menu:0:main",
		"other:0:main::1:",
	} {
		if _, err := Unpack(data); err == nil {
			t.Fatalf("expected error for %q", data)
		}
	}
}

func TestIsMenu(t *testing.T) {
	if !IsMenu(MenuCallback{Level: 0, MenuName: "main"}.Pack()) {
		t.Fatal("packed token must be recognized")
	}
	if IsMenu("category_3") {
		t.Fatal("admin callback must not be recognized as menu token")
	}
}
