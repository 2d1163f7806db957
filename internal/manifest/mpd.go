package manifest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/antchfx/xmlquery"

	"mediafetcher/internal/derrors"
)

type MPD struct {
	Type                      string
	Profiles                  string
	MediaPresentationDuration string
	MinBufferTime             string
	Periods                   []Period
}

type Period struct {
	ID             string
	Start          string
	Duration       string
	AdaptationSets []AdaptationSet
}

// AdaptationSet groups representations of the same content. Group stays
// nil both when the attribute is absent and, under tolerant parsing, when
// the manifest labels it with something like "main" instead of an index.
type AdaptationSet struct {
	ID               *int
	Group            *int
	ContentType      string
	MimeType         string
	Lang             string
	SegmentAlignment *bool
	Representations  []Representation
}

type Representation struct {
	ID                string
	Codecs            string
	MimeType          string
	Bandwidth         *int
	Width             *int
	Height            *int
	AudioSamplingRate []int
	SegmentTemplate   *SegmentTemplate
}

type SegmentTemplate struct {
	Initialization string
	Media          string
	Timescale      *int
	StartNumber    *int
	Timeline       []Segment
}

// Segment is one S element of a SegmentTimeline: start time, duration and
// repeat count in timescale units.
type Segment struct {
	T *int
	D *int
	R *int
}

type streamWrapper struct {
	Manifest         string `json:"manifest"`
	ManifestMimeType string `json:"manifest_mime_type"`
}

// Load accepts the manifest payloads streaming APIs actually hand out: a
// plain MPD document, the same document base64 encoded, or a JSON wrapper
// with a base64 manifest field.
func Load(data []byte) (*MPD, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return nil, derrors.ErrNotManifest
	}

	if raw[0] == '{' {
		var w streamWrapper
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		if w.Manifest == "" {
			return nil, derrors.ErrNotManifest
		}
		dec, err := base64.StdEncoding.DecodeString(w.Manifest)
		if err != nil {
			return nil, err
		}
		raw = bytes.TrimSpace(dec)
	}

	if len(raw) > 0 && raw[0] != '<' {
		dec, err := base64.StdEncoding.DecodeString(string(raw))
		if err != nil {
			return nil, derrors.ErrNotManifest
		}
		raw = bytes.TrimSpace(dec)
	}

	return Parse(bytes.NewReader(raw))
}

// Parse reads an MPD document. Every attribute goes through the installed
// attribute parser, see UseTolerantParsing.
func Parse(r io.Reader) (mpd *MPD, err error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return
	}

	root := doc.SelectElement("MPD")
	if root == nil {
		err = derrors.ErrNotManifest
		return
	}

	mpd = &MPD{}
	if mpd.Type, err = strAttr(root, "type"); err != nil {
		return nil, err
	}
	if mpd.Profiles, err = strAttr(root, "profiles"); err != nil {
		return nil, err
	}
	if mpd.MediaPresentationDuration, err = strAttr(root, "mediaPresentationDuration"); err != nil {
		return nil, err
	}
	if mpd.MinBufferTime, err = strAttr(root, "minBufferTime"); err != nil {
		return nil, err
	}

	for _, pn := range root.SelectElements("Period") {
		p, perr := parsePeriod(pn)
		if perr != nil {
			return nil, perr
		}
		mpd.Periods = append(mpd.Periods, p)
	}

	return mpd, nil
}

func parsePeriod(n *xmlquery.Node) (p Period, err error) {
	if p.ID, err = strAttr(n, "id"); err != nil {
		return
	}
	if p.Start, err = strAttr(n, "start"); err != nil {
		return
	}
	if p.Duration, err = strAttr(n, "duration"); err != nil {
		return
	}

	for _, an := range n.SelectElements("AdaptationSet") {
		as, aerr := parseAdaptationSet(an)
		if aerr != nil {
			err = aerr
			return
		}
		p.AdaptationSets = append(p.AdaptationSets, as)
	}
	return
}

func parseAdaptationSet(n *xmlquery.Node) (as AdaptationSet, err error) {
	if as.ID, err = intAttr(n, "id"); err != nil {
		return
	}
	if as.Group, err = intAttr(n, "group"); err != nil {
		return
	}
	if as.ContentType, err = strAttr(n, "contentType"); err != nil {
		return
	}
	if as.MimeType, err = strAttr(n, "mimeType"); err != nil {
		return
	}
	if as.Lang, err = strAttr(n, "lang"); err != nil {
		return
	}
	if as.SegmentAlignment, err = boolAttr(n, "segmentAlignment"); err != nil {
		return
	}

	for _, rn := range n.SelectElements("Representation") {
		rep, rerr := parseRepresentation(rn)
		if rerr != nil {
			err = rerr
			return
		}
		as.Representations = append(as.Representations, rep)
	}
	return
}

func parseRepresentation(n *xmlquery.Node) (rep Representation, err error) {
	if rep.ID, err = strAttr(n, "id"); err != nil {
		return
	}
	if rep.Codecs, err = strAttr(n, "codecs"); err != nil {
		return
	}
	if rep.MimeType, err = strAttr(n, "mimeType"); err != nil {
		return
	}
	if rep.Bandwidth, err = intAttr(n, "bandwidth"); err != nil {
		return
	}
	if rep.Width, err = intAttr(n, "width"); err != nil {
		return
	}
	if rep.Height, err = intAttr(n, "height"); err != nil {
		return
	}
	if rep.AudioSamplingRate, err = intListAttr(n, "audioSamplingRate"); err != nil {
		return
	}

	if st := n.SelectElement("SegmentTemplate"); st != nil {
		var tmpl SegmentTemplate
		if tmpl, err = parseSegmentTemplate(st); err != nil {
			return
		}
		rep.SegmentTemplate = &tmpl
	}
	return
}

func parseSegmentTemplate(n *xmlquery.Node) (st SegmentTemplate, err error) {
	if st.Initialization, err = strAttr(n, "initialization"); err != nil {
		return
	}
	if st.Media, err = strAttr(n, "media"); err != nil {
		return
	}
	if st.Timescale, err = intAttr(n, "timescale"); err != nil {
		return
	}
	if st.StartNumber, err = intAttr(n, "startNumber"); err != nil {
		return
	}

	if tl := n.SelectElement("SegmentTimeline"); tl != nil {
		for _, sn := range tl.SelectElements("S") {
			var s Segment
			if s.T, err = intAttr(sn, "t"); err != nil {
				return
			}
			if s.D, err = intAttr(sn, "d"); err != nil {
				return
			}
			if s.R, err = intAttr(sn, "r"); err != nil {
				return
			}
			st.Timeline = append(st.Timeline, s)
		}
	}
	return
}

func strAttr(n *xmlquery.Node, name string) (string, error) {
	v, err := parseAttr(n, name, Scalar(String))
	if err != nil || v == nil {
		return "", err
	}
	return v.(string), nil
}

func intAttr(n *xmlquery.Node, name string) (*int, error) {
	v, err := parseAttr(n, name, Scalar(Int))
	if err != nil || v == nil {
		return nil, err
	}
	i := v.(int)
	return &i, nil
}

func boolAttr(n *xmlquery.Node, name string) (*bool, error) {
	v, err := parseAttr(n, name, Scalar(Bool))
	if err != nil || v == nil {
		return nil, err
	}
	b := v.(bool)
	return &b, nil
}

func intListAttr(n *xmlquery.Node, name string) ([]int, error) {
	v, err := parseAttr(n, name, ListOf(Int))
	if err != nil || v == nil {
		return nil, err
	}
	elems := v.([]any)
	vals := make([]int, 0, len(elems))
	for _, e := range elems {
		vals = append(vals, e.(int))
	}
	return vals, nil
}
