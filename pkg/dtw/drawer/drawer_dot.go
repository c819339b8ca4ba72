package drawer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint
)

// DOTDrawer renders the warp path as a graphviz file. Each path point is a
// vertex and each move an edge, coloured on a blue to red ramp by the
// local cost paid at the target point.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	moves       map[[2]string]float64
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer writing to the given file.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
		moves:       make(map[[2]string]float64),
	}
}

// AddPoint adds a warp path point to the graph.
func (d *DOTDrawer) AddPoint(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	return nil
}

// AddMove adds an edge between two consecutive path points.
func (d *DOTDrawer) AddMove(parentName, childName string, cost float64) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}
	d.moves[[2]string{parentName, childName}] = cost

	return nil
}

const maxRGB = 240

// Draw colours the edges by cost and writes the DOT file.
func (d *DOTDrawer) Draw() error {
	err := d.colourMoves()
	if err != nil {
		return errors.Wrap(err, "unable to colour moves")
	}

	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return nil
}

func (d *DOTDrawer) colourMoves() error {
	if len(d.moves) == 0 {
		return nil
	}

	minCost := 0.0
	maxCost := 0.0
	first := true
	for _, cost := range d.moves {
		if first || cost < minCost {
			minCost = cost
		}
		if first || cost > maxCost {
			maxCost = cost
		}
		first = false
	}

	for move, cost := range d.moves {
		fraction := 1.0
		if maxCost > minCost {
			fraction = (cost - minCost) / (maxCost - minCost)
		}

		red := maxRGB * fraction
		blue := -maxRGB*fraction + maxRGB

		moveColor, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		err = d.graph.UpdateEdge(move[0], move[1],
			graph.EdgeAttribute("label", strconv.FormatFloat(cost, 'g', 4, 64)),
			graph.EdgeAttribute("fontcolor", "blue"),
			graph.EdgeAttribute("color", moveColor.ToHEX().String()),
		)
		if err != nil {
			return errors.Wrap(err, "unable to update edge")
		}
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer) error {
	desc, err := generateDOT(g)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T]) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencies {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)

func pointName(row, column int) string {
	return fmt.Sprintf("%d,%d", row, column)
}
