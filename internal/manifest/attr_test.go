package manifest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
)

func nodeWithAttrs(t *testing.T, attrs string) *xmlquery.Node {
	t.Helper()

	doc, err := xmlquery.Parse(strings.NewReader("<AdaptationSet " + attrs + "/>"))
	if err != nil {
		t.Fatal(err)
	}
	n := doc.SelectElement("AdaptationSet")
	if n == nil {
		t.Fatal("no AdaptationSet element")
	}
	return n
}

func TestParseAttrTolerant(t *testing.T) {
	tests := []struct {
		name    string
		attrs   string
		attr    string
		typ     Type
		want    any
		wantErr bool
	}{
		{name: "group label", attrs: `group="main"`, attr: "group", typ: Scalar(Int), want: nil},
		{name: "group index", attrs: `group="5"`, attr: "group", typ: Scalar(Int), want: 5},
		{name: "absent", attrs: `id="1"`, attr: "group", typ: Scalar(Int), want: nil},
		{name: "bad int elsewhere", attrs: `bandwidth="abc"`, attr: "bandwidth", typ: Scalar(Int), want: nil},
		{name: "bad uint", attrs: `width="-4"`, attr: "width", typ: Scalar(Uint), want: nil},
		{name: "bad float", attrs: `frameRate="abc"`, attr: "frameRate", typ: Scalar(Float), want: nil},
		{name: "bad bool", attrs: `segmentAlignment="maybe"`, attr: "segmentAlignment", typ: Scalar(Bool), want: nil},
		{name: "good bool", attrs: `segmentAlignment="true"`, attr: "segmentAlignment", typ: Scalar(Bool), want: true},
		{name: "string passthrough", attrs: `lang="en"`, attr: "lang", typ: Scalar(String), want: "en"},
		{name: "int list commas and spaces", attrs: `rates="1,2, 3"`, attr: "rates", typ: ListOf(Int), want: []any{1, 2, 3}},
		{name: "string list", attrs: `codecs="mp4a avc1"`, attr: "codecs", typ: ListOf(String), want: []any{"mp4a", "avc1"}},
		{name: "bad list element", attrs: `rates="1,x"`, attr: "rates", typ: ListOf(Int), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := nodeWithAttrs(t, tt.attrs)

			got, err := ParseAttrTolerant(n, tt.attr, tt.typ)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAttrTolerant() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAttrTolerant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAttrStrict(t *testing.T) {
	tests := []struct {
		name    string
		attrs   string
		attr    string
		typ     Type
		want    any
		wantErr bool
	}{
		{name: "group label rejected", attrs: `group="main"`, attr: "group", typ: Scalar(Int), wantErr: true},
		{name: "group index", attrs: `group="5"`, attr: "group", typ: Scalar(Int), want: 5},
		{name: "absent", attrs: `id="1"`, attr: "group", typ: Scalar(Int), want: nil},
		{name: "bad int rejected", attrs: `bandwidth="abc"`, attr: "bandwidth", typ: Scalar(Int), wantErr: true},
		{name: "int list", attrs: `rates="44100 48000"`, attr: "rates", typ: ListOf(Int), want: []any{44100, 48000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := nodeWithAttrs(t, tt.attrs)

			got, err := ParseAttrStrict(n, tt.attr, tt.typ)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAttrStrict() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAttrStrict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUseTolerantParsingIdempotent(t *testing.T) {
	defer func() { parseAttr = ParseAttrStrict }()

	UseTolerantParsing()
	UseTolerantParsing()

	n := nodeWithAttrs(t, `group="main"`)
	got, err := parseAttr(n, "group", Scalar(Int))
	if err != nil {
		t.Errorf("parseAttr() error = %v", err)
	}
	if got != nil {
		t.Errorf("parseAttr() = %v, want nil", got)
	}
}
