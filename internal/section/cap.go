package section

import (
	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

// backfaceShell derives the cap surface for a cut source: an owned copy of
// the source geometry at the identical position, rendered back-face only
// under the same clipping plane. Looking into the clipped opening the
// viewer then sees the inside of the shell, which closes the cross-section
// visually. Returns nil when the source has no valid geometry to clone.
func backfaceShell(src *scene.Surface, clip *scene.ClipPlane) *scene.Surface {
	if !src.Valid() {
		return nil
	}

	shell := scene.NewSurface(src.Name+"-cap", scene.RoleCap)
	shell.Transform = src.Transform
	shell.Positions = append([]geometry.Vector3(nil), src.Positions...)
	shell.Indices = append([]int(nil), src.Indices...)
	shell.Clip = clip
	shell.BackFaceOnly = true
	return shell
}
