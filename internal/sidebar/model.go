package sidebar

// Node is a sidebar entry: either a Leaf or a Group.
type Node interface {
	Label() string
	node()
}

// Leaf links a single rendered document.
type Leaf struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

// Group is a labelled list of child nodes, one per directory.
// Collapsed is only set when configured, so renderers keep their own default otherwise.
type Group struct {
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Items     []Node `json:"items" yaml:"items"`
	Collapsed *bool  `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
}

func (l Leaf) Label() string  { return l.Text }
func (g Group) Label() string { return g.Text }

func (Leaf) node()  {}
func (Group) node() {}

// Stats summarises a mapping's shape.
type Stats struct {
	Keys   int
	Groups int
	Leaves int
}

func countNodes(nodes []Node, s *Stats) {
	for _, n := range nodes {
		switch v := n.(type) {
		case Leaf:
			s.Leaves++
		case Group:
			s.Groups++
			countNodes(v.Items, s)
		}
	}
}
