package bridge

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// StartupCode is the runtime's startup page result enum.
type StartupCode int

const (
	StartupSuccess     StartupCode = 0
	StartupInvalid     StartupCode = 1
	StartupOversize    StartupCode = 2
	StartupOutOfMemory StartupCode = 3
)

// legacySuccess is the string form returned by early runtime builds.
const legacySuccess = "APP_REQUEST_CREATE_PAGE_SUCCESS"

type resultKind int

const (
	resultNull resultKind = iota
	resultBool
	resultNumber
	resultString
	resultCode
)

// StartupResult is the raw outcome of a create-startup call. Runtimes have
// answered with enum codes, plain numbers, booleans and strings; the variant
// is only inspected by IsStartupSuccess.
type StartupResult struct {
	kind resultKind
	b    bool
	n    float64
	s    string
	code StartupCode
}

func BoolResult(b bool) StartupResult        { return StartupResult{kind: resultBool, b: b} }
func NumberResult(n float64) StartupResult   { return StartupResult{kind: resultNumber, n: n} }
func StringResult(s string) StartupResult    { return StartupResult{kind: resultString, s: s} }
func CodeResult(c StartupCode) StartupResult { return StartupResult{kind: resultCode, code: c} }

// NullResult is an absent result.
func NullResult() StartupResult { return StartupResult{} }

// UnmarshalJSON decodes the wire result. Objects and arrays decode as null.
func (r *StartupResult) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch typed := v.(type) {
	case bool:
		*r = BoolResult(typed)
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return err
		}
		*r = NumberResult(f)
	case string:
		*r = StringResult(typed)
	default:
		*r = NullResult()
	}
	return nil
}

func (r StartupResult) String() string {
	switch r.kind {
	case resultBool:
		return strconv.FormatBool(r.b)
	case resultNumber:
		return strconv.FormatFloat(r.n, 'g', -1, 64)
	case resultString:
		return strconv.Quote(r.s)
	case resultCode:
		return "code(" + strconv.Itoa(int(r.code)) + ")"
	default:
		return "null"
	}
}

// IsStartupSuccess accepts every success encoding the runtime has shipped:
// the success code, literal 0, true, the strings "0", "success" and
// APP_REQUEST_CREATE_PAGE_SUCCESS, and finite numeric strings equal to the
// success code. Everything else is a failure.
func IsStartupSuccess(r StartupResult) bool {
	switch r.kind {
	case resultCode:
		return r.code == StartupSuccess
	case resultBool:
		return r.b
	case resultNumber:
		return r.n == float64(StartupSuccess)
	case resultString:
		s := strings.TrimSpace(r.s)
		switch s {
		case "0", "success", legacySuccess:
			return true
		case "":
			return false
		}
		n, ok := parseNumeric(s)
		return ok && n == float64(StartupSuccess)
	default:
		return false
	}
}

// parseNumeric reads s the way the host runtime coerces strings to numbers:
// unsigned 0x, 0o and 0b integers, or signed decimal literals. Hex floats,
// digit separators and named infinities are rejected.
func parseNumeric(s string) (float64, bool) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			if strings.ContainsRune(digits, '_') {
				return 0, false
			}
			n, err := strconv.ParseUint(digits, base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	if strings.ContainsAny(s, "_xXpPnNiI") {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
