package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Write emits the mesh as OBJ text: attribute pools first, then one "o"
// block per object. Pool order is preserved so vertex indices stay stable.
func (m *Mesh) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# xnbake")
	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %s %s %s\n", num(p.X), num(p.Y), num(p.Z))
	}
	for _, t := range m.TexCoords {
		fmt.Fprintf(bw, "vt %s %s\n", num(t.X), num(t.Y))
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", num(n.X), num(n.Y), num(n.Z))
	}

	for _, o := range m.Objects {
		if o.Name != "" {
			fmt.Fprintf(bw, "o %s\n", o.Name)
		}
		for _, f := range o.Faces {
			bw.WriteString("f")
			for _, c := range f {
				bw.WriteByte(' ')
				bw.WriteString(corner(c))
			}
			bw.WriteByte('\n')
		}
		for _, l := range o.Lines {
			bw.WriteString("l")
			for _, v := range l {
				bw.WriteByte(' ')
				bw.WriteString(strconv.Itoa(v + 1))
			}
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// WriteFile writes the mesh to path, creating parent directories.
func (m *Mesh) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating mesh directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing OBJ file: %w", err)
	}
	return f.Close()
}

func corner(c Corner) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(c.V + 1))
	switch {
	case c.VT >= 0 && c.VN >= 0:
		fmt.Fprintf(&sb, "/%d/%d", c.VT+1, c.VN+1)
	case c.VT >= 0:
		fmt.Fprintf(&sb, "/%d", c.VT+1)
	case c.VN >= 0:
		fmt.Fprintf(&sb, "//%d", c.VN+1)
	}
	return sb.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

