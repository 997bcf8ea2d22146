package viz

import (
	"strconv"
	"strings"
)

// SubPath is one contiguous run of a parsed path: its points in order and
// whether a Z closed it back to the first point.
type SubPath struct {
	Points []Point
	Closed bool
}

// ParseSimplePath parses the restricted path grammar the RenderModel allows:
// absolute M, L, and Z commands with numeric coordinate pairs. Extra pairs
// after an M are implicit line-tos, matching SVG. Anything else (relative
// lowercase commands, curves, arcs, malformed numbers) invalidates the
// whole parse and returns ok=false, so callers can skip geometric testing of
// marks they cannot faithfully interpret.
func ParseSimplePath(d string) (subpaths []SubPath, ok bool) {
	fields := tokenizePath(d)
	if len(fields) == 0 {
		return nil, false
	}

	var current *SubPath
	flush := func(closed bool) {
		if current != nil && len(current.Points) > 0 {
			current.Closed = closed
			subpaths = append(subpaths, *current)
		}
		current = nil
	}

	i := 0
	for i < len(fields) {
		cmd := fields[i]
		i++
		switch cmd {
		case "M", "L":
			if cmd == "M" {
				flush(false)
				current = &SubPath{}
			}
			if current == nil {
				// L before any M has no current point.
				return nil, false
			}
			// At least one coordinate pair is required; further pairs
			// continue the same command (implicit L after M).
			pairs := 0
			for i+1 < len(fields) && isNumericToken(fields[i]) && isNumericToken(fields[i+1]) {
				x, errX := strconv.ParseFloat(fields[i], 64)
				y, errY := strconv.ParseFloat(fields[i+1], 64)
				if errX != nil || errY != nil {
					return nil, false
				}
				current.Points = append(current.Points, Pt(x, y))
				i += 2
				pairs++
			}
			if pairs == 0 {
				return nil, false
			}
			// A dangling single number is malformed.
			if i < len(fields) && isNumericToken(fields[i]) {
				return nil, false
			}
		case "Z":
			flush(true)
		default:
			return nil, false
		}
	}
	flush(false)

	if len(subpaths) == 0 {
		return nil, false
	}
	return subpaths, true
}

// tokenizePath splits path data on whitespace and commas, and detaches
// command letters glued to numbers ("M0" -> "M", "0").
func tokenizePath(d string) []string {
	var out []string
	var num strings.Builder
	flushNum := func() {
		if num.Len() > 0 {
			out = append(out, num.String())
			num.Reset()
		}
	}
	for _, r := range d {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ',':
			flushNum()
		case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
			flushNum()
			out = append(out, string(r))
		default:
			num.WriteRune(r)
		}
	}
	flushNum()
	return out
}

// isNumericToken reports whether the token looks like a coordinate rather
// than a command letter. Full validation happens in ParseFloat.
func isNumericToken(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}
