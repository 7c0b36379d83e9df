package model

// MarkerSet widens relevance matching for one framework family: when
// Ecosystem appears in the lowercased library name, files containing any of
// Markers are treated as users of that library.
type MarkerSet struct {
	Ecosystem string   `json:"ecosystem" toml:"ecosystem"`
	Markers   []string `json:"markers" toml:"markers"`
}

// BuiltinMarkerSets returns the marker sets shipped with the scanner.
// Marker-pack files extend (never replace) this list.
func BuiltinMarkerSets() []MarkerSet {
	return []MarkerSet{
		{
			Ecosystem: "spring",
			Markers: []string{
				"org.springframework",
				"springframework",
				"@Controller",
				"@RestController",
				"@Service",
				"@Repository",
				"@Component",
				"@RequestMapping",
			},
		},
	}
}
