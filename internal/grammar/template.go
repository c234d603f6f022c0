package grammar

// SlotKind is the grammatical role of one template position.
type SlotKind int

const (
	SlotDeterminer SlotKind = iota
	SlotNoun
	SlotVerb
	SlotAdjective
	SlotAdverb
)

func (k SlotKind) String() string {
	switch k {
	case SlotDeterminer:
		return "Determiner"
	case SlotNoun:
		return "Noun"
	case SlotVerb:
		return "Verb"
	case SlotAdjective:
		return "Adjective"
	case SlotAdverb:
		return "Adverb"
	default:
		return "Unknown"
	}
}

// Template is an ordered sequence of slots making up one sentence shape.
type Template []SlotKind

// DefaultTemplates are the built-in sentence shapes.
var DefaultTemplates = []Template{
	{SlotDeterminer, SlotAdjective, SlotNoun, SlotVerb, SlotAdverb},
	{SlotNoun, SlotVerb, SlotDeterminer, SlotNoun},
	{SlotAdjective, SlotNoun, SlotVerb},
	{SlotDeterminer, SlotNoun, SlotVerb, SlotAdverb},
}

// maxSlots returns the length of the widest template.
func maxSlots(templates []Template) int {
	max := 0
	for _, t := range templates {
		if len(t) > max {
			max = len(t)
		}
	}
	return max
}
