// Package io reads and writes relgraph graph files.
//
// # Format
//
// A graph file lists nodes in id order and edges in insertion order. Node ids
// are dense, so a node's id is its position in the list; an explicit "id" is
// optional and, when present, must match that position.
//
//	{
//	  "nodes": [
//	    {"kind": "value"},
//	    {"kind": "relationship"}
//	  ],
//	  "edges": [
//	    {"source": 0, "target": 1, "direction": "value_to_rel"}
//	  ]
//	}
//
// Node kinds are "value" and "relationship". Edge directions are
// "value_to_rel", "rel_to_val", "undirected" and "bidirectional" (short forms
// vtr, rtv, und and bi are accepted); a missing direction means undirected.
//
// The same structure is accepted as YAML and TOML:
//
//	[[nodes]]
//	kind = "value"
//
//	[[edges]]
//	source = 0
//	target = 1
//	direction = "vtr"
//
// The encoding is picked from the file extension by [FormatFromPath].
package io
