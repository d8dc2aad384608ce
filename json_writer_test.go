package cashbook

import "testing"

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("type", "income")
	w.Optional("id", "")       // omitted
	w.Optional("amount", 42)   // kept
	w.Embed([]byte(`{"category":"sales"}`))

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"income","amount":42,"category":"sales"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s", got)
	}
}
