// Package gexf serializes an annotated transition digraph to GEXF
// 1.2draft, the XML format Gephi imports.
//
// The exporter emits a static directed graph. Nodes carry their state
// as the label plus weighted in/out degree and the summed entropy of
// incoming edges; edges carry their weight natively plus entropy and a
// derived summary of the follow-up distribution (distinct
// continuations and their total count — the nested counts themselves
// do not fit GEXF's flat attribute model).
//
// An edge without an entropy annotation produces no entropy attvalue,
// so absence survives serialization instead of degrading to 0.
// Output order follows the digraph's sorted accessors and is fully
// deterministic.
package gexf
