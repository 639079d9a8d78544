// Package pkg holds the relgraph libraries.
//
// # Overview
//
// Relgraph draws bipartite value/relationship graphs as circular node-link
// diagrams. The libraries split the work into small stages:
//
//	graph file (JSON / YAML / TOML)
//	         ↓
//	    [io] decode into a [graph.Graph]
//	         ↓
//	    [layout] place nodes evenly on a circle
//	         ↓
//	    [geometry] clip each edge short of both discs
//	         ↓
//	    [scene] ordered draw primitives (edges, circles, labels)
//	         ↓
//	    [render/sink] SVG / JSON, [render/nodelink] DOT via Graphviz
//	         ↓
//	    SVG/JSON/DOT/PNG/PDF output
//
// [pipeline] runs the stages with artifact caching ([cache]) and event hooks
// ([observability]); [config] loads defaults from a TOML file.
//
// # Quick Start
//
//	g := graph.Demo()
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, g, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("demo.svg", result.Artifacts["svg"], 0o644)
//
// Or drive the stages directly:
//
//	positions := layout.DefaultFrame().Place(g)
//	prims := scene.Assemble(g, positions)
//	svg := sink.RenderSVG(prims)
//
// [io]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/io
// [graph.Graph]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/graph#Graph
// [layout]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/layout
// [geometry]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/geometry
// [scene]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/scene
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/observability
// [config]: https://pkg.go.dev/github.com/matzehuels/relgraph/pkg/config
package pkg
