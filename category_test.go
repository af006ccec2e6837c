package finplan

import "testing"

func TestCategoryOf(t *testing.T) {
	testCases := []struct {
		name string
		tags []string
		text string
		want Category
	}{
		{name: "grocery keyword beats raw tag", tags: []string{"Travel"}, text: "WHOLE FOODS #123", want: Groceries},
		{name: "grocery keyword beats payment", text: "Kroger payment", want: Groceries},
		{name: "payment text", text: "Chase Credit Card Payment", want: Debts},
		{name: "student loan text", tags: []string{"Transfer"}, text: "NAVIENT STUDENT LOAN", want: Debts},
		{name: "whole tag", tags: []string{"Food and Drink", "Restaurants"}, text: "Chipotle", want: EatingOut},
		{name: "whole tag with punctuation", tags: []string{"Gas_Stations"}, text: "Shell", want: Gas},
		{name: "tag word", tags: []string{"Recreation/Gyms"}, want: Entertainment},
		{name: "only first tag counts", tags: []string{"Shops", "Travel"}, text: "Amazon", want: Shopping},
		{name: "income", tags: []string{"PAYROLL"}, text: "ACME CORP", want: Income},
		{name: "fallback first word", tags: []string{"service-financial"}, want: "Service"},
		{name: "no tag", text: "Something", want: Other},
		{name: "empty tag", tags: []string{""}, want: Other},
		{name: "punctuation tag", tags: []string{"!!!"}, want: Other},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CategoryOf(tc.tags, tc.text); got != tc.want {
				t.Errorf("CategoryOf(%q, %q) = %q, want %q", tc.tags, tc.text, got, tc.want)
			}
		})
	}
}

func TestCategoryOf_Deterministic(t *testing.T) {
	tags := []string{"Food and Drink"}
	first := CategoryOf(tags, "Blue Bottle")
	for i := 0; i < 10; i++ {
		if got := CategoryOf(tags, "Blue Bottle"); got != first {
			t.Fatalf("CategoryOf() = %q, then %q", first, got)
		}
	}
}

func TestCategory_Icon(t *testing.T) {
	if got := Groceries.Icon(); got != "shopping-cart" {
		t.Errorf("Groceries.Icon() = %q, want %q", got, "shopping-cart")
	}
	if got := Category("Service").Icon(); got != GenericIcon {
		t.Errorf("Category(Service).Icon() = %q, want %q", got, GenericIcon)
	}
	icons := make(map[string]Category)
	for c, icon := range categoryIcons {
		if icon == GenericIcon {
			t.Errorf("%q uses the generic icon", c)
		}
		if other, ok := icons[icon]; ok {
			t.Errorf("%q and %q share icon %q", c, other, icon)
		}
		icons[icon] = c
	}
}

func TestCategories(t *testing.T) {
	if len(Categories) != len(categoryIcons) {
		t.Errorf("len(Categories) = %d, want %d", len(Categories), len(categoryIcons))
	}
	for _, c := range Categories {
		if !c.IsCanonical() {
			t.Errorf("%q.IsCanonical() = false, want true", c)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		if got := ParseCategory(string(c)); got != c {
			t.Errorf("ParseCategory(%q) = %q, want %q", c, got, c)
		}
	}
	testCases := []struct {
		name string
		want Category
	}{
		{"eating out", EatingOut},
		{"  EATING   OUT ", EatingOut},
		{"restaurants", EatingOut},
		{"Gas_Stations", Gas},
		{"service", "Service"},
		{"", Other},
	}
	for _, tc := range testCases {
		if got := ParseCategory(tc.name); got != tc.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
