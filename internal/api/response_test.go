package api

import (
	"encoding/json"
	"testing"
)

func TestResponseJSONKeepsNumbers(t *testing.T) {
	resp := &Response{Body: []byte(`{"data":[{"gameCode":12,"rating":7.5}]}`)}

	v, err := resp.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	rows := v.(map[string]any)["data"].([]any)
	row := rows[0].(map[string]any)
	if n, ok := row["gameCode"].(json.Number); !ok || n.String() != "12" {
		t.Fatalf("expected json.Number 12, got %T %v", row["gameCode"], row["gameCode"])
	}
}

func TestResponseJSONInvalid(t *testing.T) {
	resp := &Response{URL: "u", Body: []byte(`<xml/>`)}
	if _, err := resp.JSON(); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestResponseDecodeJSON(t *testing.T) {
	resp := &Response{Body: []byte(`{"code":"E"}`)}
	var out struct {
		Code string `json:"code"`
	}
	if err := resp.DecodeJSON(&out); err != nil || out.Code != "E" {
		t.Fatalf("unexpected result %+v err=%v", out, err)
	}
}

func TestStripLeadingNonXML(t *testing.T) {
	cases := map[string]string{
		"\ufeff<?xml version=\"1.0\"?><a/>": "<?xml version=\"1.0\"?><a/>",
		"junk<root/>":                       "<root/>",
		"<root/>":                           "<root/>",
		"no markup":                         "no markup",
	}
	for in, want := range cases {
		if got := StripLeadingNonXML(in); got != want {
			t.Fatalf("StripLeadingNonXML(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestXMLElements(t *testing.T) {
	body := "\ufeff<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
		`<referees><referee code="R1" name="Ann Ref" countrycode="ESP"/><other code="X"/><referee code="R2" name="Bo Ref"/></referees>`
	resp := &Response{Body: []byte(body)}

	got, err := resp.XMLElements("referee")
	if err != nil {
		t.Fatalf("XMLElements: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 referees, got %d", len(got))
	}
	if got[0]["code"] != "R1" || got[0]["countrycode"] != "ESP" || got[1]["name"] != "Bo Ref" {
		t.Fatalf("unexpected attrs %v", got)
	}
}

func TestXMLElementsEmptyAndInvalid(t *testing.T) {
	got, err := XMLElements(`<referees/>`, "referee")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %v err=%v", got, err)
	}
	if _, err := XMLElements(`<referees><referee></referees>`, "referee"); err == nil {
		t.Fatal("expected parse error")
	}
}
