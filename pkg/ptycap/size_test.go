package ptycap

import "testing"

func TestParseSizePresets(t *testing.T) {
	cases := map[string]Size{
		"compact":  {80, 24},
		"standard": {120, 40},
		"large":    {160, 50},
		"xl":       {200, 60},
		"Standard": {120, 40},
	}
	for name, want := range cases {
		got, err := ParseSize(name)
		if err != nil {
			t.Fatalf("ParseSize(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseSize(%q) = %+v, want %+v", name, got, want)
		}
	}
}

func TestParseSizeCustom(t *testing.T) {
	got, err := ParseSize("132x43")
	if err != nil {
		t.Fatalf("ParseSize: %v", err)
	}
	if got != (Size{132, 43}) {
		t.Errorf("ParseSize(132x43) = %+v, want {132 43}", got)
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, bad := range []string{"", "nonsense", "0x10", "10x0"} {
		if _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) expected an error", bad)
		}
	}
}
