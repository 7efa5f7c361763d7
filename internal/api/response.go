package api

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/html/charset"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var leadingNonXML = regexp.MustCompile(`^.*?<`)

// Response is a fully read, decompressed response with status < 400.
type Response struct {
	StatusCode int
	Header     http.Header
	URL        string
	Body       []byte
}

func (r *Response) Text() string {
	return string(r.Body)
}

// JSON decodes the body into generic maps, slices and scalars. Numbers are
// kept as json.Number so integer fields survive without float rounding.
func (r *Response) JSON() (any, error) {
	var out any
	dec := jsonAPI.NewDecoder(bytes.NewReader(r.Body))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("api: decode json from %s: %w", r.URL, err)
	}
	return out, nil
}

// DecodeJSON decodes the body into dst.
func (r *Response) DecodeJSON(dst any) error {
	if err := jsonAPI.Unmarshal(r.Body, dst); err != nil {
		return fmt.Errorf("api: decode json from %s: %w", r.URL, err)
	}
	return nil
}

// XMLElements parses the body as XML and returns the attributes of every
// element named name, in document order.
func (r *Response) XMLElements(name string) ([]map[string]any, error) {
	return XMLElements(r.Text(), name)
}

// StripLeadingNonXML drops everything on the first line before the first '<'.
func StripLeadingNonXML(text string) string {
	return leadingNonXML.ReplaceAllString(text, "<")
}

// XMLElements is the string form of Response.XMLElements.
func XMLElements(text, name string) ([]map[string]any, error) {
	dec := xml.NewDecoder(strings.NewReader(StripLeadingNonXML(text)))
	dec.CharsetReader = charset.NewReaderLabel

	out := []map[string]any{}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("api: parse xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != name {
			continue
		}
		attrs := make(map[string]any, len(start.Attr))
		for _, a := range start.Attr {
			attrs[a.Name.Local] = a.Value
		}
		out = append(out, attrs)
	}
}
