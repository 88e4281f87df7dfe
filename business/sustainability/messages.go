package sustainability

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/KothuruDhansukh/ECO-MART/domain"
)

// MessagePicker chooses an index in [0, n).
type MessagePicker interface {
	Pick(n int) int
}

// RandomPicker draws uniformly from a seeded source. Safe for concurrent use.
type RandomPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rnd: rand.New(rand.NewSource(seed))}
}

func (p *RandomPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}

// FixedPicker always returns the same index (mod n).
type FixedPicker int

func (f FixedPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}

var positiveTemplates = []string{
	"🌱 Great choice! You saved %s kg CO2 and %sL water.",
	"💚 Thanks for choosing sustainably! That’s %s kg CO2 and %sL water saved.",
	"🌍 Your purchase helped reduce %s kg CO2 and %sL water. Keep it up!",
}

var negativeMessages = []string{
	"🤔 This product uses more resources than average. Next time, you could save more with greener alternatives.",
	"⚡ This item has higher footprint. Consider grouped delivery or eco-friendly options next time!",
	"🌱 Small steps matter. Explore sustainable choices to reduce impact further.",
}

// PositiveMessages returns the three positive variants for the given savings.
func PositiveMessages(carbonSaved, waterSaved float64) []string {
	out := make([]string, len(positiveTemplates))
	for i, tpl := range positiveTemplates {
		out[i] = fmt.Sprintf(tpl, formatAmount(carbonSaved), formatAmount(waterSaved))
	}
	return out
}

func NegativeMessages() []string {
	out := make([]string, len(negativeMessages))
	copy(out, negativeMessages)
	return out
}

// IsPositive reports whether a result saved carbon or water against its baseline.
func IsPositive(r domain.SustainabilityResult) bool {
	return r.CarbonSaved > 0 || r.WaterSaved > 0
}

func selectMessage(picker MessagePicker, carbonSaved, waterSaved float64) string {
	if carbonSaved > 0 || waterSaved > 0 {
		msgs := PositiveMessages(carbonSaved, waterSaved)
		return msgs[picker.Pick(len(msgs))]
	}
	return negativeMessages[picker.Pick(len(negativeMessages))]
}

// formatAmount prints a value rounded to 2 places, always with a decimal point ("3.0", "0.25").
func formatAmount(v float64) string {
	s := strconv.FormatFloat(round2(v), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
