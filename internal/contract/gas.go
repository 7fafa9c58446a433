package contract

import (
	"regexp"

	"github.com/mazznoer/csscolorparser"
)

// opcodeCosts are the fixed per-opcode costs named in spec §4.7.2.
var opcodeCosts = map[string]int{
	"storageWrite":    20000,
	"storageRead":     200,
	"callBase":        700,
	"transfer":        9000,
	"hash":            30,
	"signatureVerify": 3000,
	"eventEmit":       375,
}

var (
	gasStorageWriteRe = regexp.MustCompile(`storage\[[^\]]+\]\s*=`)
	gasStorageReadRe  = regexp.MustCompile(`storage\[[^\]]+\]`)
	gasCallRe         = regexp.MustCompile(`\.(call|send)\s*\(`)
	gasTransferRe     = regexp.MustCompile(`\.transfer\s*\(`)
	gasHashRe         = regexp.MustCompile(`\b(keccak256|sha256|hash)\s*\(`)
	gasSigVerifyRe    = regexp.MustCompile(`\b(ecrecover|verifySignature)\s*\(`)
	gasEventRe        = regexp.MustCompile(`\bemit\s+\w+\s*\(`)
)

// EstimateGas sums the fixed per-opcode costs of spec §4.7.2 over body,
// the raw text of a smart-contract function declaration.
func EstimateGas(body string) int {
	total := 0
	total += len(gasStorageWriteRe.FindAllString(body, -1)) * opcodeCosts["storageWrite"]

	// Subtract writes from the read count: an assignment's LHS subscript
	// also matches the bare-read pattern.
	reads := len(gasStorageReadRe.FindAllString(body, -1))
	writes := len(gasStorageWriteRe.FindAllString(body, -1))
	if reads > writes {
		total += (reads - writes) * opcodeCosts["storageRead"]
	}

	total += len(gasCallRe.FindAllString(body, -1)) * opcodeCosts["callBase"]
	total += len(gasTransferRe.FindAllString(body, -1)) * opcodeCosts["transfer"]
	total += len(gasHashRe.FindAllString(body, -1)) * opcodeCosts["hash"]
	total += len(gasSigVerifyRe.FindAllString(body, -1)) * opcodeCosts["signatureVerify"]
	total += len(gasEventRe.FindAllString(body, -1)) * opcodeCosts["eventEmit"]
	return total
}

// EnclosingFunction finds the "fn" declaration (spec §4.7.2) whose body
// contains line, scanning brace depth the same way DefaultAnalyzer does
// for error recovery — the dialect has no tree, so hover has to locate
// the enclosing function textually. Returns ok=false if line sits outside
// every function body.
func EnclosingFunction(text string, line int) (startLine, endLine int, ok bool) {
	lines := splitLines(text)
	for i := 0; i < len(lines); i++ {
		if !functionHeaderRe.MatchString(lines[i]) {
			continue
		}
		depth := 0
		seenOpen := false
		for j := i; j < len(lines); j++ {
			for _, r := range lines[j] {
				switch r {
				case '{':
					depth++
					seenOpen = true
				case '}':
					depth--
				}
			}
			if seenOpen && depth <= 0 {
				if line >= i && line <= j {
					return i, j, true
				}
				break
			}
		}
	}
	return 0, 0, false
}

// GasSwatchColor renders a cost-severity color (green→red by magnitude)
// as a hex swatch string for hover rendering.
func GasSwatchColor(cost int) string {
	ratio := float64(cost) / 50000
	if ratio > 1 {
		ratio = 1
	}
	name := "limegreen"
	switch {
	case ratio > 0.75:
		name = "crimson"
	case ratio > 0.4:
		name = "darkorange"
	case ratio > 0.15:
		name = "gold"
	}
	c, err := csscolorparser.Parse(name)
	if err != nil {
		return "#000000"
	}
	return c.HexString()
}
