package plugins

import "testing"

func TestParseValueCoercionOrder(t *testing.T) {
	cases := []struct {
		raw  string
		want Value
	}{
		{"True", BoolValue(true)},
		{"False", BoolValue(false)},
		{"true", StringValue("true")}, // only the exact literals are booleans
		{"42", IntValue(42)},
		{"007", IntValue(7)},
		{"2.5", FloatValue(2.5)},
		{"-3", FloatValue(-3)}, // leading minus fails the digits test; floats win
		{"1e3", FloatValue(1000)},
		{"abc", StringValue("abc")},
		{"", StringValue("")},
		{"12px", StringValue("12px")},
	}
	for _, tc := range cases {
		if got := ParseValue(tc.raw); got != tc.want {
			t.Errorf("ParseValue(%q) = %v (%v), want %v (%v)",
				tc.raw, got, got.Kind(), tc.want, tc.want.Kind())
		}
	}
}

func TestArgsTypedAccessors(t *testing.T) {
	args := Args{
		"flag":   BoolValue(true),
		"count":  IntValue(7),
		"factor": FloatValue(1.5),
		"name":   StringValue("x"),
	}

	if v, err := args.Bool("flag"); err != nil || !v {
		t.Fatalf("Bool(flag) = %v, %v", v, err)
	}
	if v, err := args.Int("count"); err != nil || v != 7 {
		t.Fatalf("Int(count) = %v, %v", v, err)
	}
	if v, err := args.Float("factor"); err != nil || v != 1.5 {
		t.Fatalf("Float(factor) = %v, %v", v, err)
	}
	// integers widen to float for fractional parameters
	if v, err := args.Float("count"); err != nil || v != 7 {
		t.Fatalf("Float(count) = %v, %v", v, err)
	}

	if _, err := args.Bool("count"); err == nil {
		t.Fatalf("Bool on an int should fail")
	}
	if _, err := args.Int("factor"); err == nil {
		t.Fatalf("Int on a float should fail")
	}
	if _, err := args.Float("name"); err == nil {
		t.Fatalf("Float on a string should fail")
	}
	if _, err := args.Int("missing"); err == nil {
		t.Fatalf("missing option should fail")
	}
}
