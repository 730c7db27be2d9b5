package mesh

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
)

// WriteOBJ writes m as a Wavefront OBJ object, transforming positions by model
// and normals by model's upper 3x3. Pass mgl64.Ident4() to write raw positions.
func (m *Mesh) WriteOBJ(w io.Writer, name string, model mgl64.Mat4) error {
	bw := bufio.NewWriter(w)

	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	normalMat := model.Mat3()
	for _, v := range m.Vertices {
		p := model.Mul4x1(v.Position.Vec4(1))
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for _, v := range m.Vertices {
		n := normalMat.Mul3x1(v.Normal)
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	// OBJ indices are 1-based.
	for _, f := range m.Faces {
		a, b, c := f[0]+1, f[1]+1, f[2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}
