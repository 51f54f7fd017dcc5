package gosiemesh

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/ordmap"
	"github.com/sirupsen/logrus"
)

// MaterialRecord holds the shading parameters of one named MTL material.
// Every field defaults to zero.
type MaterialRecord struct {
	Name       string
	Ns         float32
	Ka         [3]float32
	Kd         [3]float32
	Ks         [3]float32
	Ke         [3]float32
	Ni         float32
	D          float32
	Illum      int
	DiffuseMap string
}

// RGBA returns the diffuse colour. The dissolve value only becomes the
// alpha when it was set; a zero D is treated as opaque.
func (m *MaterialRecord) RGBA() color.RGBA {
	alpha := float32(1)
	if m.D > 0 {
		alpha = m.D
	}
	return color.RGBA{
		R: unitToByte(m.Kd[0]),
		G: unitToByte(m.Kd[1]),
		B: unitToByte(m.Kd[2]),
		A: unitToByte(alpha),
	}
}

func unitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// MaterialTable maps material names to records in definition order.
type MaterialTable struct {
	records *ordmap.Map[string, *MaterialRecord]
}

func NewMaterialTable() *MaterialTable {
	return &MaterialTable{records: ordmap.New[string, *MaterialRecord]()}
}

// Add stores rec under its name, replacing any earlier record in place.
func (t *MaterialTable) Add(rec *MaterialRecord) {
	t.records.Add(rec.Name, rec)
}

// Lookup returns the record named name. A nil table holds nothing.
func (t *MaterialTable) Lookup(name string) (*MaterialRecord, bool) {
	if t == nil {
		return nil, false
	}
	return t.records.ValueByKeyTry(name)
}

func (t *MaterialTable) Len() int {
	if t == nil {
		return 0
	}
	return t.records.Len()
}

// Names returns the material names in table order.
func (t *MaterialTable) Names() []string {
	if t == nil {
		return nil
	}
	return t.records.Keys()
}

// materialParser builds a MaterialTable line by line.
type materialParser struct {
	table   *MaterialTable
	current *MaterialRecord
	rep     *reporter
	log     logrus.FieldLogger
	ignored map[string]bool
}

// ParseMaterials reads MTL text from r. Malformed property lines are
// reported and skipped; only a read failure is returned as an error.
func ParseMaterials(r io.Reader, opts ...Option) (*MaterialTable, []*Diagnostic, error) {
	o := buildOptions(opts)
	p := &materialParser{
		table:   NewMaterialTable(),
		rep:     &reporter{source: o.sourceName, log: o.log},
		log:     o.log,
		ignored: make(map[string]bool),
	}
	if err := scanLines(r, p.handleLine); err != nil {
		return nil, p.rep.diags, fmt.Errorf("parsing materials: %w", err)
	}
	p.seal()

	o.log.WithFields(logrus.Fields{
		"source":    o.sourceName,
		"materials": p.table.Len(),
	}).Debug("Parsed materials")
	return p.table, p.rep.diags, nil
}

func (p *materialParser) seal() {
	if p.current != nil {
		p.table.Add(p.current)
		p.current = nil
	}
}

func (p *materialParser) handleLine(lineNo int, fields []string) {
	directive, args := fields[0], fields[1:]
	if directive == "newmtl" {
		p.seal()
		p.current = &MaterialRecord{Name: joinName(args)}
		return
	}

	switch directive {
	case "Ns", "Ni", "d", "Tr", "illum", "Ka", "Kd", "Ks", "Ke", "map_Kd":
	default:
		if !p.ignored[directive] {
			p.ignored[directive] = true
			p.log.WithField("directive", directive).Debug("Ignoring unsupported material directive")
		}
		return
	}

	if p.current == nil {
		p.rep.report(ErrMalformedDirective, lineNo, "", "'%s' before any newmtl", directive)
		return
	}
	if err := p.apply(p.current, directive, args); err != nil {
		p.rep.report(ErrMalformedDirective, lineNo, p.current.Name, "'%s': %v", directive, err)
	}
}

// apply sets one property of rec. rec is left untouched on error.
func (p *materialParser) apply(rec *MaterialRecord, directive string, args []string) error {
	switch directive {
	case "Ns", "Ni", "d", "Tr":
		v, err := scalar(args)
		if err != nil {
			return err
		}
		switch directive {
		case "Ns":
			rec.Ns = v
		case "Ni":
			rec.Ni = v
		case "d":
			rec.D = v
		case "Tr":
			rec.D = 1 - v
		}
	case "illum":
		if len(args) < 1 {
			return fmt.Errorf("missing value")
		}
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("could not parse integer value '%s'", args[0])
		}
		rec.Illum = v
	case "Ka", "Kd", "Ks", "Ke":
		c, err := colour(args)
		if err != nil {
			return err
		}
		switch directive {
		case "Ka":
			rec.Ka = c
		case "Kd":
			rec.Kd = c
		case "Ks":
			rec.Ks = c
		case "Ke":
			rec.Ke = c
		}
	case "map_Kd":
		path := texturePath(args)
		if path == "" {
			return fmt.Errorf("missing texture path")
		}
		rec.DiffuseMap = path
	}
	return nil
}

// mapOptionArgs gives the minimum and maximum value count of each texture
// map option.
var mapOptionArgs = map[string][2]int{
	"-blendu": {1, 1}, "-blendv": {1, 1}, "-bm": {1, 1}, "-boost": {1, 1},
	"-cc": {1, 1}, "-clamp": {1, 1}, "-imfchan": {1, 1}, "-texres": {1, 1},
	"-mm": {2, 2}, "-o": {1, 3}, "-s": {1, 3}, "-t": {1, 3},
}

// texturePath skips the leading options of a map statement and joins what
// is left, keeping paths that contain spaces.
func texturePath(args []string) string {
	i := 0
	for i < len(args) && strings.HasPrefix(args[i], "-") {
		n, ok := mapOptionArgs[args[i]]
		i++
		if !ok {
			continue
		}
		for taken := 0; taken < n[1] && i < len(args); taken++ {
			if taken >= n[0] {
				if _, err := strconv.ParseFloat(args[i], 32); err != nil {
					break
				}
			}
			i++
		}
	}
	return joinName(args[i:])
}

func scalar(args []string) (float32, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing value")
	}
	vals, err := parseFloats(args[:1])
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}

// colour parses 1 to 3 components; missing g and b repeat r.
func colour(args []string) ([3]float32, error) {
	var c [3]float32
	if len(args) < 1 {
		return c, fmt.Errorf("missing colour components")
	}
	if len(args) > 3 {
		args = args[:3]
	}
	vals, err := parseFloats(args)
	if err != nil {
		return c, err
	}
	c = [3]float32{vals[0], vals[0], vals[0]}
	copy(c[:], vals)
	return c, nil
}
