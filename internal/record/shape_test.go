package record

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type country struct {
	Code string
	Name string
}

type club struct {
	Code     string
	Name     string
	Capacity int
	Active   bool
	Country  *country
	Images   map[string]string
}

type match struct {
	GameCode int
	Rating   float64
	Extra    any
	Local    *club
	Road     *club
	Clubs    []club
}

var (
	countryShape = NewShape("country", country{Name: "unknown"},
		String("code", func(c *country, v string) { c.Code = v }).Required(),
		String("name", func(c *country, v string) { c.Name = v }),
	)
	clubShape = NewShape("club", club{},
		String("code", func(c *club, v string) { c.Code = v }).Required(),
		String("name", func(c *club, v string) { c.Name = v }),
		Int("capacity", func(c *club, v int) { c.Capacity = v }),
		Bool("active", func(c *club, v bool) { c.Active = v }),
		One("country", countryShape, func(c *club, v *country) { c.Country = v }),
		StringMap("images", func(c *club, v map[string]string) { c.Images = v }),
	)
	matchShape = NewShape("match", match{},
		Int("game_code", func(m *match, v int) { m.GameCode = v }),
		Float("rating", func(m *match, v float64) { m.Rating = v }),
		Raw("extra", func(m *match, v any) { m.Extra = v }),
		One("local", clubShape, func(m *match, v *club) { m.Local = v }),
		One("road", clubShape, func(m *match, v *club) { m.Road = v }),
		Many("clubs", clubShape, func(m *match, v []club) { m.Clubs = v }),
	)
)

func TestBuildAssignsSuppliedFieldsAndDefaultsTheRest(t *testing.T) {
	got, err := countryShape.Build(map[string]any{"code": "ESP"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := country{Code: "ESP", Name: "unknown"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestBuildAcceptsAnySubsetOfDeclaredFields(t *testing.T) {
	full := map[string]any{
		"code":     "MAD",
		"name":     "Real Madrid",
		"capacity": float64(15000),
		"active":   true,
		"country":  map[string]any{"code": "ESP"},
		"images":   map[string]any{"crest": "https://img/crest.png"},
	}
	for key := range full {
		if key == "code" {
			continue
		}
		subset := map[string]any{"code": "MAD"}
		subset[key] = full[key]
		if _, err := clubShape.Build(subset); err != nil {
			t.Fatalf("subset with %q failed: %v", key, err)
		}
	}
	if _, err := clubShape.Build(full); err != nil {
		t.Fatalf("full input failed: %v", err)
	}
}

func TestBuildRejectsUnknownKey(t *testing.T) {
	_, err := countryShape.Build(map[string]any{"code": "ESP", "flag": "x"})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	ce, ok := AsConstructionError(err)
	if !ok {
		t.Fatalf("expected construction error, got %T", err)
	}
	if ce.Shape != "country" || ce.Path != "flag" {
		t.Fatalf("unexpected error location %+v", ce)
	}
}

func TestBuildRejectsMissingRequiredField(t *testing.T) {
	cases := []map[string]any{
		{"name": "Spain"},
		{"code": nil},
	}
	for _, in := range cases {
		if _, err := countryShape.Build(in); !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected missing field error for %v, got %v", in, err)
		}
	}
}

func TestBuildNullKeepsDefault(t *testing.T) {
	got, err := countryShape.Build(map[string]any{"code": "ITA", "name": nil})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Name != "unknown" {
		t.Fatalf("expected default name, got %q", got.Name)
	}
}

func TestNestedBuildMatchesDirectBuild(t *testing.T) {
	localData := map[string]any{
		"code":    "MAD",
		"name":    "Real Madrid",
		"country": map[string]any{"code": "ESP", "name": "Spain"},
	}

	direct, err := clubShape.Build(localData)
	if err != nil {
		t.Fatalf("direct build failed: %v", err)
	}
	m, err := matchShape.Build(map[string]any{"game_code": float64(7), "local": localData})
	if err != nil {
		t.Fatalf("nested build failed: %v", err)
	}
	if m.Local == nil || !reflect.DeepEqual(*m.Local, direct) {
		t.Fatalf("expected nested club %+v, got %+v", direct, m.Local)
	}
	if m.Road != nil {
		t.Fatalf("expected absent road club to stay nil, got %+v", m.Road)
	}
	if m.Local.Country == nil || m.Local.Country.Name != "Spain" {
		t.Fatalf("expected transitive nested country, got %+v", m.Local.Country)
	}
}

func TestManyBuildsOneRecordPerElement(t *testing.T) {
	m, err := matchShape.Build(map[string]any{
		"clubs": []any{
			map[string]any{"code": "MAD"},
			map[string]any{"code": "BAR", "country": map[string]any{"code": "ESP"}},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(m.Clubs) != 2 || m.Clubs[0].Code != "MAD" || m.Clubs[1].Country.Code != "ESP" {
		t.Fatalf("unexpected clubs %+v", m.Clubs)
	}
}

func TestNestedErrorsCarryFullPath(t *testing.T) {
	_, err := matchShape.Build(map[string]any{
		"clubs": []any{
			map[string]any{"code": "MAD"},
			map[string]any{"code": "BAR", "country": map[string]any{"code": "ESP", "iso": "x"}},
		},
	})
	ce, ok := AsConstructionError(err)
	if !ok {
		t.Fatalf("expected construction error, got %v", err)
	}
	if ce.Shape != "match" || ce.Path != "clubs[1].country.iso" {
		t.Fatalf("unexpected error location shape=%s path=%s", ce.Shape, ce.Path)
	}
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected unknown field cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "clubs[1].country.iso") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestShapeMismatchFails(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
	}{
		{"record field given string", map[string]any{"local": "MAD"}},
		{"list field given object", map[string]any{"clubs": map[string]any{"code": "MAD"}}},
		{"list element not object", map[string]any{"clubs": []any{"MAD"}}},
		{"int field given fraction", map[string]any{"game_code": 1.5}},
		{"int field given text", map[string]any{"game_code": "abc"}},
		{"float field given bool", map[string]any{"rating": true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := matchShape.Build(tc.in); !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("expected type mismatch, got %v", err)
			}
		})
	}
}

func TestPrimitiveConversions(t *testing.T) {
	c, err := clubShape.Build(map[string]any{
		"code":     json.Number("123"),
		"capacity": "8000",
		"active":   "true",
		"images":   map[string]any{"logo": "a.png", "empty": nil},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Code != "123" || c.Capacity != 8000 || !c.Active {
		t.Fatalf("unexpected conversions %+v", c)
	}
	if len(c.Images) != 1 || c.Images["logo"] != "a.png" {
		t.Fatalf("unexpected images %+v", c.Images)
	}

	m, err := matchShape.Build(map[string]any{"game_code": json.Number("42"), "rating": "7.5", "extra": []any{1.0}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if m.GameCode != 42 || m.Rating != 7.5 || !reflect.DeepEqual(m.Extra, []any{1.0}) {
		t.Fatalf("unexpected match %+v", m)
	}

	m, err = matchShape.Build(map[string]any{"game_code": json.Number("4.2e1")})
	if err != nil || m.GameCode != 42 {
		t.Fatalf("expected exponent form to convert, got %d (%v)", m.GameCode, err)
	}
}

func TestIntRejectsOutOfRange(t *testing.T) {
	for _, v := range []any{1e20, -1e20, json.Number("12345678901234567890"), json.Number("1e30"), 2.5} {
		_, err := matchShape.Build(map[string]any{"game_code": v})
		if !errors.Is(err, ErrTypeMismatch) {
			t.Fatalf("%v: expected ErrTypeMismatch, got %v", v, err)
		}
		if ce, ok := AsConstructionError(err); !ok || ce.Path != "game_code" {
			t.Fatalf("%v: expected game_code path, got %v", v, err)
		}
	}
}

func TestStringMapRejectsNestedValues(t *testing.T) {
	_, err := clubShape.Build(map[string]any{"code": "MAD", "images": map[string]any{"logo": map[string]any{}}})
	ce, ok := AsConstructionError(err)
	if !ok || ce.Path != "images.logo" {
		t.Fatalf("expected images.logo path, got %v", err)
	}
}

func TestBuildListAndBuildAny(t *testing.T) {
	list, err := countryShape.BuildList([]any{map[string]any{"code": "ESP"}, map[string]any{"code": "GRE"}})
	if err != nil || len(list) != 2 {
		t.Fatalf("expected two countries, got %v (%v)", list, err)
	}

	if _, err := countryShape.BuildList([]any{map[string]any{"code": "ESP"}, map[string]any{}}); err == nil {
		t.Fatalf("expected the whole list to fail on one bad element")
	} else if ce, _ := AsConstructionError(err); ce.Path != "[1].code" {
		t.Fatalf("expected [1].code path, got %q", ce.Path)
	}

	if _, err := countryShape.BuildAny([]any{}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected mismatch for non-object, got %v", err)
	}
	if c, err := countryShape.BuildAny(map[string]any{"code": "TUR"}); err != nil || c.Code != "TUR" {
		t.Fatalf("unexpected BuildAny result %+v (%v)", c, err)
	}
}

func TestDescribeListsFieldsInOrder(t *testing.T) {
	info := matchShape.Describe()
	if len(info) != 6 {
		t.Fatalf("expected 6 fields, got %d", len(info))
	}
	if info[3].Name != "local" || info[3].Kind != KindRecord || info[3].Shape != "club" {
		t.Fatalf("unexpected local field info %+v", info[3])
	}
	if info[5].Kind != KindList || info[5].Shape != "club" {
		t.Fatalf("unexpected clubs field info %+v", info[5])
	}
	if !clubShape.Describe()[0].Required {
		t.Fatalf("expected code to be required")
	}
	if KindList.String() != "list" || Kind(9).String() != "kind(9)" {
		t.Fatalf("unexpected kind strings")
	}
}

func TestNewShapePanicsOnDuplicateField(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on duplicate field")
		}
	}()
	NewShape("dup", country{},
		String("code", func(c *country, v string) { c.Code = v }),
		String("code", func(c *country, v string) { c.Code = v }),
	)
}
