// Package svgpath converts between SVG path data and path element streams.
//
// Parse drives any pathcodec.Builder from the "d" attribute of an SVG path,
// typically a pathcodec.Encoder. Writer is a pathcodec.Builder producing path data.
package svgpath

import (
	"fmt"

	"github.com/chaisql/pathcodec"
	"github.com/cockroachdb/errors"
	"github.com/tdewolff/parse/v2/strconv"
)

var (
	// ErrSyntax is returned when the path data is malformed.
	ErrSyntax = errors.New("bad path data")

	// ErrUnsupported is returned for elliptical arc commands,
	// which have no equivalent element.
	ErrUnsupported = errors.New("unsupported path command")
)

// number of arguments per command
var cmdLens = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func isSpace(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && isSpace(path[i]) {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func syntaxError(pos int, format string, args ...interface{}) error {
	return errors.Wrapf(ErrSyntax, "%s at position %d", fmt.Sprintf(format, args...), pos+1)
}

func add(a, b pathcodec.Point) pathcodec.Point {
	return pathcodec.Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// reflect returns the reflection of c about p.
func reflect(c, p pathcodec.Point) pathcodec.Point {
	return pathcodec.Point{X: 2*p.X - c.X, Y: 2*p.Y - c.Y}
}

// Parse parses SVG path data and calls b once per element.
// Relative commands are made absolute, H and V become lines, and the
// shorthand curves S and T are expanded to full cubic and quadratic curves.
// Arc commands are rejected with ErrUnsupported.
// Elements parsed before an error have already been passed to b.
func Parse(d string, b pathcodec.Builder) error {
	path := []byte(d)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return nil
	}
	if path[i] != 'M' && path[i] != 'm' {
		return syntaxError(i, "path should start with a move command")
	}

	var f [7]float64
	var cur, start, ctrl pathcodec.Point
	prevCmd := byte('z')
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(path[i]) {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		n, ok := cmdLens[CMD]
		if !ok {
			return syntaxError(i-1, "unknown command '%c'", cmd)
		}
		if CMD == 'A' {
			return errors.Wrapf(ErrUnsupported, "arc command '%c' at position %d", cmd, i)
		}

		for j := 0; j < n; j++ {
			num, m := strconv.ParseFloat(path[i:])
			if m == 0 {
				if repeat && j == 0 && i < len(path) {
					return syntaxError(i, "unknown command '%c'", path[i])
				}
				return syntaxError(i, "%d numbers should follow command '%c'", n, cmd)
			}
			f[j] = num
			i += m
			i += skipCommaWhitespace(path[i:])
		}

		rel := cmd != CMD
		abs := func(p pathcodec.Point) pathcodec.Point {
			if rel {
				return add(p, cur)
			}
			return p
		}

		switch CMD {
		case 'M':
			cur = abs(pathcodec.Point{X: f[0], Y: f[1]})
			start = cur
			b.MoveTo(cur)
			// subsequent pairs are implicit lines
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			b.ClosePath()
			cur = start
		case 'L':
			cur = abs(pathcodec.Point{X: f[0], Y: f[1]})
			b.LineTo(cur)
		case 'H':
			x := f[0]
			if rel {
				x += cur.X
			}
			cur = pathcodec.Point{X: x, Y: cur.Y}
			b.LineTo(cur)
		case 'V':
			y := f[0]
			if rel {
				y += cur.Y
			}
			cur = pathcodec.Point{X: cur.X, Y: y}
			b.LineTo(cur)
		case 'C':
			c1 := abs(pathcodec.Point{X: f[0], Y: f[1]})
			c2 := abs(pathcodec.Point{X: f[2], Y: f[3]})
			end := abs(pathcodec.Point{X: f[4], Y: f[5]})
			b.CurveTo(c1, c2, end)
			ctrl, cur = c2, end
		case 'S':
			c1 := cur
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				c1 = reflect(ctrl, cur)
			}
			c2 := abs(pathcodec.Point{X: f[0], Y: f[1]})
			end := abs(pathcodec.Point{X: f[2], Y: f[3]})
			b.CurveTo(c1, c2, end)
			ctrl, cur = c2, end
		case 'Q':
			c := abs(pathcodec.Point{X: f[0], Y: f[1]})
			end := abs(pathcodec.Point{X: f[2], Y: f[3]})
			b.QuadCurveTo(c, end)
			ctrl, cur = c, end
		case 'T':
			c := cur
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				c = reflect(ctrl, cur)
			}
			end := abs(pathcodec.Point{X: f[0], Y: f[1]})
			b.QuadCurveTo(c, end)
			ctrl, cur = c, end
		}
		prevCmd = cmd
	}

	return nil
}

// Encode parses SVG path data and appends the encoded elements to dst.
func Encode(dst []byte, d string) ([]byte, error) {
	enc := pathcodec.NewEncoder(&dst)
	err := Parse(d, enc)
	return dst, err
}
