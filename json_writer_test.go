package tradebook

import "testing"

func TestJSONObjectWriter_KeepsFieldOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2)
	w.Append("a", 1)
	w.Append("c", "three")

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	want := `{"b":2,"a":1,"c":"three"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Optional("memo", "")
	w.Optional("id", int64(0))
	w.Optional("result", Money{})
	w.Optional("kept", "x")

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	want := `{"kept":"x"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}

func TestJSONObjectWriter_EmbedFrom(t *testing.T) {
	var w jsonObjectWriter
	w.EmbedFrom(baseCmd{Command: CmdDeposit, Date: MustParseDate("2025-01-10")})
	w.Append("amount", M(500))

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	want := `{"command":"deposit","date":"2025-01-10","amount":500}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
