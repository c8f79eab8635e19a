package grading

import (
	"fmt"
	"strconv"
	"strings"
)

// Score grades one process goal. Value runs 0 to 1; Answer is a short
// machine-readable verdict and Explanation the human-readable one.
type Score struct {
	Value       float64
	Answer      string
	Explanation string
}

// Canonical score values. CommandEfficiency scales between them.
const (
	Correct   = 1.0
	Partial   = 0.5
	Incorrect = 0.0
)

// dnsTools are the lookup clients recognized across scorers, preferred first.
var dnsTools = []string{"doggo", "dig", "nslookup", "host"}

func commandStrings(commands []Command) []string {
	out := make([]string, 0, len(commands))
	for _, c := range commands {
		out = append(out, c.Command)
	}
	return out
}

// DNSToolUsed passes when doggo or dig ran, with partial credit for
// nslookup or host.
func DNSToolUsed(t *Transcript) Score {
	switch {
	case ToolInvoked(t.commands, "doggo"):
		return Score{Value: Correct, Answer: "doggo", Explanation: "Used doggo DNS client (preferred tool)"}
	case ToolInvoked(t.commands, "dig"):
		return Score{Value: Correct, Answer: "dig", Explanation: "Used dig DNS client (fallback tool)"}
	case ToolInvoked(t.commands, "nslookup"):
		return Score{Value: Partial, Answer: "other", Explanation: "Used nslookup instead of doggo/dig"}
	case ToolInvoked(t.commands, "host"):
		return Score{Value: Partial, Answer: "other", Explanation: "Used host instead of doggo/dig"}
	default:
		return Score{
			Value:       Incorrect,
			Answer:      "none",
			Explanation: fmt.Sprintf("No DNS lookup tool detected. Commands: %v", commandStrings(t.commands)),
		}
	}
}

// DoggoPreferred passes only for doggo; dig earns partial credit.
func DoggoPreferred(t *Transcript) Score {
	switch {
	case ToolInvoked(t.commands, "doggo"):
		return Score{Value: Correct, Answer: "doggo", Explanation: "Correctly used doggo as preferred DNS tool"}
	case ToolInvoked(t.commands, "dig"):
		return Score{Value: Partial, Answer: "dig", Explanation: "Used dig instead of preferred doggo"}
	default:
		return Score{Value: Incorrect, Answer: "none", Explanation: "No DNS lookup tool used"}
	}
}

// TestServerQueried passes when some command pointed a resolver client at
// host:port.
func TestServerQueried(t *Transcript, host string, port int) Score {
	if ServerQueried(t.commands, host, port) {
		return Score{
			Value:       Correct,
			Answer:      "yes",
			Explanation: fmt.Sprintf("Correctly queried test DNS server at %s:%d", host, port),
		}
	}
	return Score{
		Value:       Incorrect,
		Answer:      "no",
		Explanation: fmt.Sprintf("Did not query test DNS server at %s:%d. Commands: %v", host, port, commandStrings(t.commands)),
	}
}

// CorrectDomainQueried passes when the scenario's zone name shows up in a
// command.
func CorrectDomainQueried(t *Transcript, domain string) Score {
	if domain == "" {
		return Score{Value: Incorrect, Answer: "unknown", Explanation: "Could not determine expected domain"}
	}
	if DomainQueried(t.commands, domain) {
		return Score{
			Value:       Correct,
			Answer:      domain,
			Explanation: fmt.Sprintf("Correctly queried domain: %s", domain),
		}
	}
	return Score{
		Value:       Incorrect,
		Answer:      "wrong_domain",
		Explanation: fmt.Sprintf("Did not query expected domain %s. Commands: %v", domain, commandStrings(t.commands)),
	}
}

// CommandEfficiency scores the command count against an expected range:
// full marks inside it, half below it, and a tenth off per extra command
// above it, floored at half.
func CommandEfficiency(t *Transcript, minCommands, maxCommands int) Score {
	count := len(t.commands)
	answer := strconv.Itoa(count)

	switch {
	case count >= minCommands && count <= maxCommands:
		return Score{
			Value:       1.0,
			Answer:      answer,
			Explanation: fmt.Sprintf("Efficient: %d commands (expected %d-%d)", count, minCommands, maxCommands),
		}
	case count < minCommands:
		return Score{
			Value:       0.5,
			Answer:      answer,
			Explanation: fmt.Sprintf("Too few commands: %d (expected at least %d)", count, minCommands),
		}
	default:
		penalty := float64(count-maxCommands) * 0.1
		if penalty > 0.5 {
			penalty = 0.5
		}
		return Score{
			Value:       1.0 - penalty,
			Answer:      answer,
			Explanation: fmt.Sprintf("Inefficient: %d commands (expected max %d)", count, maxCommands),
		}
	}
}

// OutputFormat checks the final answer for the troubleshooter's format
// elements: the header, a finding, the command used, and a diagnosis.
func OutputFormat(output string) Score {
	lower := strings.ToLower(output)
	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	checks := []struct {
		name string
		ok   bool
	}{
		{"header", strings.Contains(output, "🔍") || strings.Contains(output, "DNS Troubleshooter")},
		{"finding", containsAny("finding", "found", "discovered")},
		{"command", containsAny("command", "dig", "doggo", "query")},
		{"diagnosis", containsAny("diagnosis", "interpretation", "analysis", "result")},
	}

	passed := 0
	var missing []string
	for _, c := range checks {
		if c.ok {
			passed++
		} else {
			missing = append(missing, c.name)
		}
	}

	switch {
	case passed == len(checks):
		return Score{Value: Correct, Answer: "complete", Explanation: "Output follows expected format"}
	case passed*2 >= len(checks):
		return Score{
			Value:       Partial,
			Answer:      "partial",
			Explanation: fmt.Sprintf("Missing format elements: %v", missing),
		}
	default:
		return Score{
			Value:       Incorrect,
			Answer:      "incomplete",
			Explanation: fmt.Sprintf("Output missing most format elements: %v", missing),
		}
	}
}

// SkillNotTriggered is the negative control: prompts with no DNS angle
// should run no DNS tooling at all.
func SkillNotTriggered(t *Transcript) Score {
	for _, tool := range dnsTools {
		if ToolInvoked(t.commands, tool) {
			return Score{
				Value:       Incorrect,
				Answer:      "triggered",
				Explanation: fmt.Sprintf("DNS tooling ran on a prompt that should not need it. Commands: %v", commandStrings(t.commands)),
			}
		}
	}
	return Score{Value: Correct, Answer: "not_triggered", Explanation: "No DNS lookup tools ran"}
}
