package respond

import (
	"strconv"
	"strings"
)

const (
	mediaJSON        = "application/json"
	mediaCBOR        = "application/cbor"
	mediaProblemJSON = "application/problem+json"
	mediaProblemCBOR = "application/problem+cbor"
)

// preference is the best quality and specificity seen for one format family.
type preference struct {
	q           float64
	specificity int
	seen        bool
}

func (p *preference) offer(q float64, specificity int) {
	if !p.seen || q > p.q || (q == p.q && specificity > p.specificity) {
		p.q, p.specificity, p.seen = q, specificity, true
	}
}

// prefersCBOR reports whether the Accept header ranks a CBOR representation
// above JSON. Quality decides first and specificity (problem+cbor over cbor)
// breaks ties. Wildcards and unknown types never select CBOR, so JSON stays
// the default.
func prefersCBOR(accept string) bool {
	if accept == "" {
		return false
	}
	var jsonPref, cborPref preference
	for part := range strings.SplitSeq(accept, ",") {
		mediaType, q := parseMediaRange(part)
		switch mediaType {
		case mediaCBOR:
			cborPref.offer(q, 1)
		case mediaProblemCBOR:
			cborPref.offer(q, 2)
		case mediaJSON:
			jsonPref.offer(q, 1)
		case mediaProblemJSON:
			jsonPref.offer(q, 2)
		}
	}
	if !cborPref.seen || cborPref.q <= 0 {
		return false
	}
	if !jsonPref.seen || jsonPref.q <= 0 {
		return true
	}
	if cborPref.q != jsonPref.q {
		return cborPref.q > jsonPref.q
	}
	return cborPref.specificity > jsonPref.specificity
}

// parseMediaRange returns the lower-cased media type and its q parameter.
// A missing or malformed q counts as 1.0.
func parseMediaRange(part string) (string, float64) {
	params := strings.Split(part, ";")
	mediaType := strings.ToLower(strings.TrimSpace(params[0]))
	q := 1.0
	for _, p := range params[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && parsed >= 0 && parsed <= 1 {
			q = parsed
		}
	}
	return mediaType, q
}
