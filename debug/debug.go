// Package debug prints trace lines for a parse when debugging is switched
// on.
package debug

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/apc/diag"
)

// EnvVar switches debug output on for the apc command.
const EnvVar = "APC_DEBUG"

// Config is set up once at startup and handed to whatever needs it.
type Config struct {
	Enabled bool
}

type Printer struct {
	cfg Config
	loc diag.Locator
	log logrus.FieldLogger
}

func NewPrinter(cfg Config, loc diag.Locator, log logrus.FieldLogger) *Printer {
	return &Printer{cfg: cfg, loc: loc, log: log}
}

func (p *Printer) Enabled() bool {
	return p != nil && p.cfg.Enabled
}

// Print logs "Debug Info (<line>:<col>): <message>" if debugging is on.
func (p *Printer) Print(message string) {
	if !p.Enabled() {
		return
	}
	p.log.Printf("Debug Info (%s): %s", p.loc.LineColumn(), HumanReadable(message))
}

var hrtReplacer = strings.NewReplacer(
	"\\", `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// HumanReadable makes whitespace and other control characters in s
// visible.
func HumanReadable(s string) string {
	s = hrtReplacer.Replace(s)
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if isControl(r) {
			q := strconv.QuoteRune(r)
			sb.WriteString(q[1 : len(q)-1])
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isControl(r rune) bool {
	return r < ' ' || r == 0x7f
}
