package mesh

// cuboidConfig holds the per-side settings applied by GenerateCuboid.
type cuboidConfig struct {
	windings [cuboidSideCount]Winding
}

// CuboidBuilderOption is a functional option for configuring GenerateCuboid.
type CuboidBuilderOption func(*cuboidConfig)

// WithWinding sets the winding of a single side. Out-of-range sides are ignored.
//
// Parameters:
//   - side: the side to configure
//   - w: the winding for that side
//
// Returns:
//   - CuboidBuilderOption: a function that applies the winding option
func WithWinding(side CuboidSide, w Winding) CuboidBuilderOption {
	return func(c *cuboidConfig) {
		if side < 0 || side >= cuboidSideCount {
			return
		}
		c.windings[side] = w
	}
}

// WithAllWindings sets the same winding on every side.
//
// Parameters:
//   - w: the winding for all sides
//
// Returns:
//   - CuboidBuilderOption: a function that applies the winding option
func WithAllWindings(w Winding) CuboidBuilderOption {
	return func(c *cuboidConfig) {
		for i := range c.windings {
			c.windings[i] = w
		}
	}
}
