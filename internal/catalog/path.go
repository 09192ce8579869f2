package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a mapping key or a sequence index.
type Segment struct {
	name  string
	index int
	isIdx bool
}

func Field(name string) Segment { return Segment{name: name} }

func Index(i int) Segment { return Segment{index: i, isIdx: true} }

func (s Segment) IsIndex() bool { return s.isIdx }
func (s Segment) Name() string  { return s.name }
func (s Segment) Pos() int      { return s.index }

func (s Segment) String() string {
	if s.isIdx {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.name
}

// Path addresses one nested value starting at the catalog root,
// e.g. sachacacao.products[0].price.
type Path []Segment

func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 && !s.isIdx {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// UnmarshalJSON accepts the form ["store","products",0,"price"].
func (p *Path) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("path: %w", err)
	}
	out := make(Path, 0, len(raw))
	for i, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) > 0 && r[0] == '"' {
			var name string
			if err := json.Unmarshal(r, &name); err != nil {
				return fmt.Errorf("path segment %d: %w", i, err)
			}
			out = append(out, Field(name))
			continue
		}
		n, err := strconv.Atoi(string(r))
		if err != nil {
			return fmt.Errorf("path segment %d: want string or integer, got %s", i, r)
		}
		out = append(out, Index(n))
	}
	*p = out
	return nil
}

func (p Path) MarshalJSON() ([]byte, error) {
	out := make([]any, len(p))
	for i, s := range p {
		if s.isIdx {
			out[i] = s.index
		} else {
			out[i] = s.name
		}
	}
	return json.Marshal(out)
}

func (p Path) isStoreID() bool {
	return len(p) == 2 && !p[0].isIdx && p[1] == Field("id")
}

func (p Path) isProductPrice() bool {
	return len(p) == 4 && !p[0].isIdx && p[1] == Field("products") && p[2].isIdx && p[3] == Field("price")
}
