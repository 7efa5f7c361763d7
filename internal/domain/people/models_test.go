package people

import (
	"reflect"
	"testing"
)

func TestShapesCoverEveryField(t *testing.T) {
	cases := []struct {
		name   string
		fields int
		typ    reflect.Type
	}{
		{"country", len(CountryShape.Describe()), reflect.TypeOf(Country{})},
		{"bio", len(BioShape.Describe()), reflect.TypeOf(Bio{})},
		{"referee", len(RefereeShape.Describe()), reflect.TypeOf(Referee{})},
		{"person", len(PersonShape.Describe()), reflect.TypeOf(Person{})},
	}
	for _, tc := range cases {
		if tc.fields != tc.typ.NumField() {
			t.Fatalf("%s shape expected %d fields, got %d", tc.name, tc.typ.NumField(), tc.fields)
		}
	}
}

func TestPersonYAMLTagsMirrorJSON(t *testing.T) {
	personType := reflect.TypeOf(Person{})
	for i := 0; i < personType.NumField(); i++ {
		f := personType.Field(i)
		if f.Tag.Get("json") != f.Tag.Get("yaml") {
			t.Fatalf("field %s json tag %q differs from yaml tag %q", f.Name, f.Tag.Get("json"), f.Tag.Get("yaml"))
		}
	}
}
