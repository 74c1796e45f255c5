// Package obj exports point sets as Wavefront OBJ point clouds.
//
// Only vertex data statements are emitted: "v" lines for every point, plus
// "vn" and "vt" lines for points that carry normals or texture coordinates.
// The result has no faces and loads as a point cloud in common mesh viewers.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/klauspost/compress/gzip"

	"github.com/krachzack/aitios-surf/geom"
)

// Write dumps the points to w in OBJ format. The first write error is
// returned and terminates the dump.
func Write[P geom.Position](w io.Writer, points iter.Seq[P]) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "# point cloud generated by aitios-surf"); err != nil {
		return err
	}
	for p := range points {
		pos := p.Position()
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", pos.X, pos.Y, pos.Z); err != nil {
			return err
		}
		if n, ok := geom.NormalOf(p); ok {
			if _, err := fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z); err != nil {
				return err
			}
		}
		if uv, ok := geom.TexcoordsOf(p); ok {
			if _, err := fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteGzip behaves like Write but gzip-compresses the OBJ stream.
func WriteGzip[P geom.Position](w io.Writer, points iter.Seq[P]) error {
	zw := gzip.NewWriter(w)
	if err := Write(zw, points); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
