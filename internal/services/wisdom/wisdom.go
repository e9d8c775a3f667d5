package wisdom

import (
	_ "embed"
	"strings"

	"github.com/denisAlshanov/rustyreel/internal/utils"
)

//go:embed wisdom.txt
var embeddedWisdom string

// FallbackWisdom is dispensed when no quotes are loaded.
const FallbackWisdom = `Ah, traveler of digital realms, you have stumbled upon a path most unexpected. Even the many-tailed fox, in its infinite wisdom and foresight, sometimes encounters the unfathomable. We stand together at the threshold of the unknown, where even shadows hesitate to tread.

In the dance of code and light, a conundrum has emerged, woven from strands of possibility that should not exist. Tread lightly and alert the guardians of this realm, for we have ventured into a mystery as deep as the oldest tail. Your patience and understanding are as valued as the rarest of gems in the moonlit den of the fox.

May clarity find us in this enigma.

*Somehow, an impossible, but non-critical, error has occurred. Good job.*`

// Dispenser hands out random fox wisdom. It is immutable after construction
// and safe for concurrent use.
type Dispenser struct {
	quotes []string
}

// NewDispenser returns a Dispenser over the quotes embedded in the binary.
func NewDispenser() *Dispenser {
	return NewDispenserFromText(embeddedWisdom)
}

// NewDispenserFromText builds a Dispenser from newline separated quotes.
// Blank lines are skipped.
func NewDispenserFromText(text string) *Dispenser {
	var quotes []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		quotes = append(quotes, line)
	}
	return &Dispenser{quotes: quotes}
}

func (d *Dispenser) Len() int {
	return len(d.quotes)
}

func (d *Dispenser) Dispense() string {
	if len(d.quotes) == 0 {
		return FallbackWisdom
	}
	return d.quotes[utils.RandomInt(len(d.quotes))]
}
