package drawer

// Drawer is an interface that defines the methods for drawing a warp path.
type Drawer interface {
	// AddPoint adds one warp path point to the drawing.
	AddPoint(name string) error
	// AddMove adds the move between two consecutive path points, carrying
	// the local cost paid at the child point.
	AddMove(parentName, childName string, cost float64) error
	// Draw creates a file with the warp path graph.
	Draw() error
}
