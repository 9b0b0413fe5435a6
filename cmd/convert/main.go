package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"rotconv/internal/mathutil"
	"rotconv/internal/preview"
	"rotconv/internal/texture"
)

func main() {
	// CLI flags
	euler := flag.String("euler", "", "Euler angles in degrees: pitch,yaw,roll")
	quat := flag.String("quat", "", "Quaternion x,y,z,w to convert back to Euler angles")
	normalize := flag.String("normalize", "", "Angle in degrees to reduce into [0, 360)")
	previewOut := flag.String("preview", "", "Write a WebP orientation preview to this path")
	size := flag.Int("size", 256, "Preview size in pixels")
	supersample := flag.Int("supersample", 2, "Preview supersampling factor")
	background := flag.String("background", "", "Preview background image (tga, bmp, png, jpg)")
	bgColor := flag.String("bgcolor", "", "Preview background color as RRGGBB (used without -background)")

	flag.Parse()

	if *euler == "" && *quat == "" && *normalize == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *normalize != "" {
		vals, err := parseList(*normalize, 1)
		if err != nil {
			fatalf("Error: -normalize: %v", err)
		}
		fmt.Printf("Normalized    %s\n", fmtFloat(mathutil.NormalizeAngle(vals[0])))
	}

	var q mathutil.Quat
	haveQuat := false

	if *euler != "" {
		vals, err := parseList(*euler, 3)
		if err != nil {
			fatalf("Error: -euler: %v", err)
		}
		deg := mathutil.Euler{vals[0], vals[1], vals[2]}
		rad := deg.Rad()
		q = mathutil.EulerToQuat(rad.Pitch(), rad.Yaw(), rad.Roll())
		haveQuat = true

		fmt.Printf("Euler (deg)   %s\n", fmtEuler(deg))
		fmt.Printf("Quaternion    %s  |q|=%.6f\n", fmtQuat(q), q.Norm())
	}

	if *quat != "" {
		vals, err := parseList(*quat, 4)
		if err != nil {
			fatalf("Error: -quat: %v", err)
		}
		q = mathutil.Quat{vals[0], vals[1], vals[2], vals[3]}
		haveQuat = true

		if n := q.Norm(); math.Abs(n-1) > 1e-4 {
			fmt.Fprintf(os.Stderr, "Warning: |q| = %.6f, result is not a pure rotation\n", n)
		}
		fmt.Printf("Quaternion    %s\n", fmtQuat(q))
	}

	if haveQuat {
		m := mathutil.Mat4FromQuat(q).Mat3()
		for r := 0; r < 3; r++ {
			label := ""
			if r == 0 {
				label = "Matrix"
			}
			fmt.Printf("%-13s [% .6f % .6f % .6f]\n", label, m.At(r, 0), m.At(r, 1), m.At(r, 2))
		}

		back := mathutil.Mat3ToEuler(m).Deg()
		lock := ""
		if mathutil.GimbalLocked(m) {
			lock = "  (gimbal lock: roll fixed to 0)"
		}
		fmt.Printf("Euler back    %s%s\n", fmtEuler(back), lock)
	}

	if *previewOut != "" {
		if !haveQuat {
			fatalf("Error: -preview needs -euler or -quat")
		}
		opts := preview.Options{Size: *size, Supersample: *supersample}
		if *background != "" {
			bg, err := texture.LoadTexture(*background)
			if err != nil {
				fatalf("Error loading background: %v", err)
			}
			opts.Background = bg
		}
		if *bgColor != "" {
			c, err := parseHexColor(*bgColor)
			if err != nil {
				fatalf("Error: -bgcolor: %v", err)
			}
			opts.Color = &c
		}
		if err := preview.WriteFile(*previewOut, preview.Render(q, opts)); err != nil {
			fatalf("Error writing preview: %v", err)
		}
		fmt.Printf("Preview: %s\n", *previewOut)
	}
}

// parseList parses exactly n comma-separated finite numbers.
func parseList(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	if err := mathutil.CheckFinite(vals...); err != nil {
		return nil, err
	}
	return vals, nil
}

// parseHexColor parses RRGGBB, with or without a leading '#'.
func parseHexColor(s string) ([3]uint8, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return [3]uint8{}, fmt.Errorf("want RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return [3]uint8{}, err
	}
	return [3]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fmtEuler(e mathutil.Euler) string {
	return fmt.Sprintf("pitch=%.4f yaw=%.4f roll=%.4f", e.Pitch(), e.Yaw(), e.Roll())
}

func fmtQuat(q mathutil.Quat) string {
	return fmt.Sprintf("x=%.6f y=%.6f z=%.6f w=%.6f", q.X(), q.Y(), q.Z(), q.W())
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
