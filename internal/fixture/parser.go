package fixture

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"

	"rotconv/internal/mathutil"
)

// xmlFixtures matches the fixture table schema:
//
//	<Fixtures>
//	  <Table Name="normal" Enabled="true" Tolerance="0.0001">
//	    <Case Yaw="90" Pitch="0" Roll="0" X="0" Y="0.7071" Z="0" W="0.7071"/>
//	  </Table>
//	</Fixtures>
type xmlFixtures struct {
	Tables []xmlTable `xml:"Table"`
}

type xmlTable struct {
	Name      string    `xml:"Name,attr"`
	Enabled   string    `xml:"Enabled,attr"`
	Tolerance string    `xml:"Tolerance,attr"`
	Cases     []xmlCase `xml:"Case"`
}

type xmlCase struct {
	Yaw   string `xml:"Yaw,attr"`
	Pitch string `xml:"Pitch,attr"`
	Roll  string `xml:"Roll,attr"`
	X     string `xml:"X,attr"`
	Y     string `xml:"Y,attr"`
	Z     string `xml:"Z,attr"`
	W     string `xml:"W,attr"`
}

// Parse reads a fixture XML file and returns its cases in file order.
func Parse(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}

	var doc xmlFixtures
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}

	var cases []Case
	for ti, tbl := range doc.Tables {
		name := tbl.Name
		if name == "" {
			name = fmt.Sprintf("table%d", ti)
		}

		enabled := true
		if tbl.Enabled != "" {
			enabled, err = strconv.ParseBool(tbl.Enabled)
			if err != nil {
				return nil, fmt.Errorf("fixture: %s: table %s: Enabled: %w", path, name, err)
			}
		}

		var tol float64
		if tbl.Tolerance != "" {
			tol, err = parseFloat(tbl.Tolerance)
			if err != nil {
				return nil, fmt.Errorf("fixture: %s: table %s: Tolerance: %w", path, name, err)
			}
		}

		for i, xc := range tbl.Cases {
			c, err := xc.toCase()
			if err != nil {
				return nil, fmt.Errorf("fixture: %s: %s#%d: %w", path, name, i, err)
			}
			c.Table = name
			c.Index = i
			c.Tol = tol
			c.Enabled = enabled
			cases = append(cases, c)
		}
	}

	return cases, nil
}

func (xc xmlCase) toCase() (Case, error) {
	var angles [3]float64
	for i, s := range [3]string{xc.Pitch, xc.Yaw, xc.Roll} {
		if s == "" {
			continue
		}
		v, err := parseFloat(s)
		if err != nil {
			return Case{}, err
		}
		angles[i] = v
	}

	c := Case{Degrees: mathutil.Euler(angles)}

	comps := [4]string{xc.X, xc.Y, xc.Z, xc.W}
	if comps == [4]string{} {
		return c, nil
	}
	var q mathutil.Quat
	for i, s := range comps {
		if s == "" {
			return Case{}, fmt.Errorf("expected quaternion needs all of X, Y, Z, W")
		}
		v, err := parseFloat(s)
		if err != nil {
			return Case{}, err
		}
		q[i] = v
	}
	c.Want = &q
	return c, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if err := mathutil.CheckFinite(v); err != nil {
		return 0, err
	}
	return v, nil
}
