package menu

import (
	"errors"
	"testing"

	"lavkabot/pkg/tgrouter/callback"
)

func TestScreenFromCallbackVariants(t *testing.T) {
	cases := []struct {
		name string
		cb   callback.MenuCallback
		want Screen
	}{
		{"home", callback.MenuCallback{Level: 0, MenuName: "main"}, Home{}},
		{"info", callback.MenuCallback{Level: 0, MenuName: "payment"}, Info{Banner: "payment"}},
		{"catalog", callback.MenuCallback{Level: 1, MenuName: "catalog"}, Catalog{}},
		{
			"product page",
			callback.MenuCallback{Level: 2, MenuName: "next", Category: 7, Page: 3},
			ProductPage{Category: 7, Page: 3},
		},
		{
			"cart view",
			callback.MenuCallback{Level: 3, MenuName: "cart", Page: 1},
			CartPage{Action: CartView, Page: 1},
		},
		{
			"cart decrement",
			callback.MenuCallback{Level: 3, MenuName: "decrement", Page: 2, ProductID: 9},
			CartPage{Action: CartDecrement, Page: 2, ProductID: 9},
		},
		{"registration", callback.MenuCallback{Level: 4, MenuName: "registration"}, Registration{}},
		{"order", callback.MenuCallback{Level: 5, MenuName: "order"}, Checkout{Stage: StageOrder}},
		{"pickup", callback.MenuCallback{Level: 5, MenuName: "pickup"}, Checkout{Stage: StagePickup}},
		{
			"pickup detail",
			callback.MenuCallback{Level: 5, MenuName: "pickfrom_Центральная"},
			Checkout{Stage: StagePickupDetail, Branch: "Центральная"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ScreenFromCallback(tc.cb)
			if err != nil {
				t.Fatalf("ScreenFromCallback returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestScreenFromCallbackUnknown(t *testing.T) {
	bad := []callback.MenuCallback{
		{Level: 6, MenuName: "main"},
		{Level: -1, MenuName: "main"},
		{Level: 5, MenuName: "teleport"},
	}
	for _, cb := range bad {
		if _, err := ScreenFromCallback(cb); !errors.Is(err, ErrUnknownScreen) {
			t.Errorf("level=%d name=%q: expected ErrUnknownScreen, got %v", cb.Level, cb.MenuName, err)
		}
	}
}
