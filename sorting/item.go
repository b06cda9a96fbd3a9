package sorting

import "fmt"

// Kind is the material class of an item and the bin that accepts it
type Kind uint8

const (
	Plastic Kind = iota
	Paper
	Glass
	Organic
	kindCount
)

var kindNames = [kindCount]string{
	Plastic: "plastic",
	Paper:   "paper",
	Glass:   "glass",
	Organic: "organic",
}

// Kinds returns every bin kind in display order
func Kinds() []Kind {
	return []Kind{Plastic, Paper, Glass, Organic}
}

// ParseKind resolves a kind name
func ParseKind(s string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Item is one piece of trash to sort
type Item struct {
	Name  string
	Kind  Kind
	Icon  string
	Decay float64 // Years to break down in nature
}

// Catalog is the fixed item pool
var Catalog = []Item{
	{Name: "Botella", Kind: Plastic, Icon: "🧴", Decay: 450},
	{Name: "Bolsa", Kind: Plastic, Icon: "🛍", Decay: 150},
	{Name: "Periódico", Kind: Paper, Icon: "📰", Decay: 0.1},
	{Name: "Caja", Kind: Paper, Icon: "📦", Decay: 0.2},
	{Name: "Botella Vidrio", Kind: Glass, Icon: "🍾", Decay: 4000},
	{Name: "Manzana", Kind: Organic, Icon: "🍎", Decay: 0.1},
	{Name: "Plátano", Kind: Organic, Icon: "🍌", Decay: 0.1},
}

// Facts are shown occasionally after a correct drop
var Facts = []string{
	"¡Una botella de plástico tarda 450 años en desaparecer!",
	"El vidrio es 100% reciclable y se puede usar infinitas veces.",
	"Si reciclas una tonelada de papel, salvas 17 árboles.",
	"El 80% de la contaminación del océano viene de la tierra.",
}
