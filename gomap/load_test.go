package gomap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gon-format/gon/parse"
)

type factory struct {
	Location      string `json:"location"`
	WhirlyWidgets int    `json:"whirly_widgets"`
	TwirlyWidgets int    `json:"twirly_widgets"`
}

func TestLoad(t *testing.T) {
	in := []byte(`
		location "My Basement"
		whirly_widgets 10
		twirly_widgets 15
	`)
	f := factory{}
	if err := Load(in, &f); err != nil {
		t.Fatal(err)
	}
	want := factory{
		Location:      "My Basement",
		WhirlyWidgets: 10,
		TwirlyWidgets: 15,
	}
	if d := cmp.Diff(want, f); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestLoadNested(t *testing.T) {
	type factories struct {
		Big    factory  `json:"big_factory"`
		Little *factory `json:"little_factory"`
		Order  []string `json:"order"`
	}
	in := []byte(`
		big_factory {
			location "New York City"
			whirly_widgets 8346
			twirly_widgets 854687
		}
		little_factory {
			location "My Basement"
			whirly_widgets 10
			twirly_widgets 15
		}
		order [big little]
	`)
	fs := factories{}
	if err := Load(in, &fs); err != nil {
		t.Fatal(err)
	}
	if fs.Big.TwirlyWidgets != 854687 {
		t.Errorf("got %d", fs.Big.TwirlyWidgets)
	}
	if fs.Little == nil || fs.Little.Location != "My Basement" {
		t.Errorf("got %+v", fs.Little)
	}
	if len(fs.Order) != 2 || fs.Order[1] != "little" {
		t.Errorf("got %v", fs.Order)
	}
}

func TestLoadFromer(t *testing.T) {
	// a Fromer controls its own conversion instead of the json bridge
	e := &example{}
	if err := Load([]byte("a 5 b ValueC"), e); err != nil {
		t.Fatal(err)
	}
	if e.A != 5 || e.B != valueC {
		t.Errorf("got %+v", e)
	}
}

func TestLoadParseErr(t *testing.T) {
	if err := Load([]byte("{a 1"), &map[string]any{}); err == nil {
		t.Error("expected error")
	}
}

func TestToAny(t *testing.T) {
	in := []byte(`
		name widgets
		count 10
		ratio 0.5
		on true
		tags [a b]
	`)
	want := map[string]any{
		"name":  "widgets",
		"count": int64(10),
		"ratio": 0.5,
		"on":    true,
		"tags":  []any{"a", "b"},
	}
	node, err := parse.Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, ToAny(node)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
