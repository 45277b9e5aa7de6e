package index

import "github.com/cv-labs/g2p"

// BuildFromNetwork derives a CompiledIndex snapshotting every Mapping
// currently registered on n.
func BuildFromNetwork(n *g2p.Network) CompiledIndex {
	mappings := n.AllMappings()
	idx := CompiledIndex{
		SchemaVersion: SchemaVersion,
		Mappings:      make([]MappingSummary, 0, len(mappings)),
		Adjacency:     make([]Edge, 0, len(mappings)),
	}
	for _, m := range mappings {
		cfg := m.Config()
		idx.Mappings = append(idx.Mappings, MappingSummary{
			InLang:      m.InLang(),
			OutLang:     m.OutLang(),
			DisplayName: cfg.DisplayName,
			Type:        string(cfg.Type),
			RuleCount:   len(m.RuleAlphabet()),
		})
		idx.Adjacency = append(idx.Adjacency, Edge{InLang: m.InLang(), OutLang: m.OutLang()})
	}
	return idx
}
