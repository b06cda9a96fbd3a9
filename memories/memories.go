// Package memories unlocks short "ocean memory" stories as items of each
// material are sorted.
package memories

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/ecoring/sorting"
)

// Memory is one unlockable story
type Memory struct {
	ID        string
	Kind      sorting.Kind
	Title     string
	Text      string
	Voice     string
	Vibration int // Hz
	Threshold int // Items of Kind needed to unlock
}

// Catalog lists memories in unlock priority order
var Catalog = []Memory{
	{
		ID: "plastic_dinosaur", Kind: sorting.Plastic, Title: "Memoria Ancestral",
		Text:  "Hace 65 millones de años, fui parte de un bosque prehistórico. Dinosaurios caminaban sobre mí. Luego, bajo presión y tiempo, me transformé en petróleo. Ahora soy esta botella... pero recuerdo mi origen vegetal.",
		Voice: "Voz de la Tierra Profunda", Vibration: 174, Threshold: 3,
	},
	{
		ID: "plastic_journey", Kind: sorting.Plastic, Title: "Viaje sin Fin",
		Text:  "Nací en una fábrica en China. Viajé en barco a México. Estuve 15 minutos en manos humanas. Llevo 150 años flotando en el océano. He visto tortugas confundirme con medusas.",
		Voice: "Voz del Viento Marino", Vibration: 285, Threshold: 5,
	},
	{
		ID: "glass_volcano", Kind: sorting.Glass, Title: "Origen Volcánico",
		Text:  "Soy lava solidificada. Arena de erupciones antiguas. En hornos humanos, recupero mi fluidez primigenia. Podría durar 4,000 años más, contemplando las estrellas desde el fondo marino.",
		Voice: "Voz del Fuego Subterráneo", Vibration: 396, Threshold: 2,
	},
	{
		ID: "paper_tree", Kind: sorting.Paper, Title: "Árbol Transformado",
		Text:  "Fui un roble en Canadá. Mis hojas bailaban con el viento. Ahora soy papel, pero aún recuerdo la lluvia en mis hojas. En 2 años, volveré a la tierra.",
		Voice: "Voz del Bosque", Vibration: 528, Threshold: 2,
	},
	{
		ID: "apple_cycle", Kind: sorting.Organic, Title: "Ciclo de Vida",
		Text:  "De semilla a flor, de flor a fruto, de fruto a semilla otra vez. En 6 meses completo el círculo. No soy basura, soy el próximo manzano.",
		Voice: "Voz del Huerto", Vibration: 741, Threshold: 1,
	},
}

// Tracker counts sorted items per kind and unlocks memories
type Tracker struct {
	counts   map[sorting.Kind]int
	unlocked []int // Catalog indices in unlock order
	seen     map[int]bool
}

// NewTracker returns a tracker with nothing unlocked
func NewTracker() *Tracker {
	return &Tracker{
		counts: make(map[sorting.Kind]int),
		seen:   make(map[int]bool),
	}
}

// Register records one sorted item and returns the memory it unlocked, if any.
// At most one memory unlocks per call.
func (t *Tracker) Register(kind sorting.Kind) (Memory, bool) {
	t.counts[kind]++
	for i, m := range Catalog {
		if m.Kind != kind || t.seen[i] || t.counts[kind] < m.Threshold {
			continue
		}
		t.seen[i] = true
		t.unlocked = append(t.unlocked, i)
		return m, true
	}
	return Memory{}, false
}

// Count returns items registered for kind
func (t *Tracker) Count(kind sorting.Kind) int {
	return t.counts[kind]
}

// Unlocked returns unlocked memories in unlock order
func (t *Tracker) Unlocked() []Memory {
	out := make([]Memory, 0, len(t.unlocked))
	for _, i := range t.unlocked {
		out = append(out, Catalog[i])
	}
	return out
}

// Total returns the number of memories that can be unlocked
func (t *Tracker) Total() int {
	return len(Catalog)
}

// Journal renders the unlocked memories as text
func (t *Tracker) Journal() string {
	if len(t.unlocked) == 0 {
		return "Aún no has desbloqueado memorias. ¡Limpia más objetos!"
	}

	var sb strings.Builder
	sb.WriteString("MI DIARIO OCEÁNICO\n\n")
	for _, m := range t.Unlocked() {
		fmt.Fprintf(&sb, "%s\n", m.Title)
		fmt.Fprintf(&sb, "   \"%s...\"\n", excerpt(m.Text, 60))
		fmt.Fprintf(&sb, "   Frecuencia: %d Hz\n\n", m.Vibration)
	}
	fmt.Fprintf(&sb, "Memorias desbloqueadas: %d/%d", len(t.unlocked), t.Total())
	return sb.String()
}

// excerpt cuts s to n runes
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
