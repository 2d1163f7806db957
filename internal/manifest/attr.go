package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Kind is the primitive target type of a manifest attribute.
type Kind int

const (
	String Kind = iota
	Int
	Uint
	Float
	Bool
)

// Type declares what an attribute converts to: a scalar kind or a list of
// them. List values are comma or space separated in the manifest.
type Type struct {
	Kind Kind
	List bool
}

func Scalar(k Kind) Type { return Type{Kind: k} }
func ListOf(k Kind) Type { return Type{Kind: k, List: true} }

// AttrFunc extracts a typed attribute value from a manifest node. A nil
// value with a nil error means the attribute is absent.
type AttrFunc func(n *xmlquery.Node, name string, t Type) (any, error)

var parseAttr AttrFunc = ParseAttrStrict

// UseTolerantParsing swaps the attribute parser behind every manifest
// lookup for the tolerant variant. Call once at startup before any
// manifest is parsed; the substitution holds for the rest of the process
// and calling it again changes nothing.
func UseTolerantParsing() {
	parseAttr = ParseAttrTolerant
}

// ParseAttrStrict converts the named attribute to t and fails on any value
// that does not convert. This is what the DASH schema calls for, and it
// chokes on manifests that put labels like "main" into numeric fields.
func ParseAttrStrict(n *xmlquery.Node, name string, t Type) (any, error) {
	raw, ok := lookupAttr(n, name)
	if !ok {
		return nil, nil
	}
	if t.List {
		return convertList(raw, t.Kind)
	}
	return convert(raw, t.Kind)
}

// ParseAttrTolerant resolves conversion failures to "attribute not there"
// instead of rejecting the whole manifest. Some services ship DASH
// manifests whose group attribute carries a label ("main") instead of the
// index the schema calls for; nobody needs that field badly enough to fail
// the parse over it.
func ParseAttrTolerant(n *xmlquery.Node, name string, t Type) (any, error) {
	raw, ok := lookupAttr(n, name)
	if !ok {
		return nil, nil
	}

	if name == "group" && !t.List && t.Kind == Int {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil
		}
		return v, nil
	}

	if t.List {
		// element failures still propagate, same as the strict parser
		return convertList(raw, t.Kind)
	}

	v, err := convert(raw, t.Kind)
	if err != nil {
		return nil, nil
	}
	return v, nil
}

func lookupAttr(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func convert(raw string, k Kind) (any, error) {
	switch k {
	case String:
		return raw, nil
	case Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	case Uint:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	case Float:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	case Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown attribute kind: %v", k)
	}
}

func convertList(raw string, k Kind) (any, error) {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})

	vals := make([]any, 0, len(tokens))
	for _, tok := range tokens {
		v, err := convert(tok, k)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
