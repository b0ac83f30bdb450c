package gexf

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vkiriako/trigraph/digraph"
	"github.com/vkiriako/trigraph/entropy"
)

const xmlns = "http://www.gexf.net/1.2draft"

// Attribute ids are stable so downstream tooling can address them
// without parsing titles.
const (
	nodeAttrInDegree     = "0"
	nodeAttrOutDegree    = "1"
	nodeAttrInEntropySum = "2"

	edgeAttrEntropy     = "0"
	edgeAttrNextSupport = "1"
	edgeAttrNextTotal   = "2"
)

type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	Xmlns   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	Mode            string     `xml:"mode,attr"`
	DefaultEdgeType string     `xml:"defaultedgetype,attr"`
	AttrDecls       []attrDecl `xml:"attributes"`
	Nodes           nodeList   `xml:"nodes"`
	Edges           edgeList   `xml:"edges"`
}

type attrDecl struct {
	Class string `xml:"class,attr"`
	Attrs []attr `xml:"attribute"`
}

type attr struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type nodeList struct {
	Nodes []node `xml:"node"`
}

type node struct {
	ID        string     `xml:"id,attr"`
	Label     string     `xml:"label,attr"`
	AttValues []attValue `xml:"attvalues>attvalue"`
}

type edgeList struct {
	Edges []edge `xml:"edge"`
}

type edge struct {
	ID        string     `xml:"id,attr"`
	Source    string     `xml:"source,attr"`
	Target    string     `xml:"target,attr"`
	Weight    int64      `xml:"weight,attr"`
	AttValues []attValue `xml:"attvalues>attvalue"`
}

type attValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

// Write serializes g to w as GEXF 1.2draft.
func Write(w io.Writer, g *digraph.Graph) error {
	doc := gexfDoc{
		Xmlns:   xmlns,
		Version: "1.2",
		Graph: gexfGraph{
			Mode:            "static",
			DefaultEdgeType: "directed",
			AttrDecls: []attrDecl{
				{
					Class: "node",
					Attrs: []attr{
						{ID: nodeAttrInDegree, Title: "in_degree", Type: "long"},
						{ID: nodeAttrOutDegree, Title: "out_degree", Type: "long"},
						{ID: nodeAttrInEntropySum, Title: "in_entropy_sum", Type: "double"},
					},
				},
				{
					Class: "edge",
					Attrs: []attr{
						{ID: edgeAttrEntropy, Title: "entropy", Type: "double"},
						{ID: edgeAttrNextSupport, Title: "next_support", Type: "long"},
						{ID: edgeAttrNextTotal, Title: "next_total", Type: "long"},
					},
				},
			},
		},
	}

	inSums := entropy.IncomingSums(g)
	for _, s := range g.Nodes() {
		doc.Graph.Nodes.Nodes = append(doc.Graph.Nodes.Nodes, node{
			ID:    string(s),
			Label: string(s),
			AttValues: []attValue{
				{For: nodeAttrInDegree, Value: formatInt(g.InDegree(s))},
				{For: nodeAttrOutDegree, Value: formatInt(g.OutDegree(s))},
				{For: nodeAttrInEntropySum, Value: formatFloat(inSums[s])},
			},
		})
	}

	for i, e := range g.Edges() {
		var total int64
		for _, c := range e.NextCounts {
			total += c
		}
		avs := make([]attValue, 0, 3)
		if h, ok := e.Entropy(); ok {
			avs = append(avs, attValue{For: edgeAttrEntropy, Value: formatFloat(h)})
		}
		avs = append(avs,
			attValue{For: edgeAttrNextSupport, Value: formatInt(int64(len(e.NextCounts)))},
			attValue{For: edgeAttrNextTotal, Value: formatInt(total)},
		)
		doc.Graph.Edges.Edges = append(doc.Graph.Edges.Edges, edge{
			ID:        strconv.Itoa(i),
			Source:    string(e.From),
			Target:    string(e.To),
			Weight:    e.Weight,
			AttValues: avs,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("gexf: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("gexf: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("gexf: encode: %w", err)
	}
	// Trailing newline so the file ends cleanly.
	_, err := io.WriteString(w, "\n")
	return err
}

// Save writes g to the file at path, creating or truncating it.
func Save(path string, g *digraph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gexf: create %s: %w", path, err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("gexf: save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("gexf: close %s: %w", path, err)
	}
	return nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
