package grading

import (
	"fmt"
	"regexp"
	"strings"
)

// ToolInvoked reports whether tool starts a command or follows a shell
// separator in any command. The name must be followed by whitespace, so a
// bare mention at the end of a line does not count as an invocation.
func ToolInvoked(commands []Command, tool string) bool {
	pattern := regexp.MustCompile(`(^|\||;|&&|\s)` + regexp.QuoteMeta(strings.ToLower(tool)) + `\s`)
	for _, cmd := range commands {
		if pattern.MatchString(strings.ToLower(cmd.Command)) {
			return true
		}
	}
	return false
}

// ServerQueried reports whether any command targeted the DNS server at
// host:port, in either dig form (@host with -p port or -pport) or doggo
// form (@host:port).
func ServerQueried(commands []Command, host string, port int) bool {
	at := "@" + host
	spaced := fmt.Sprintf("-p %d", port)
	tight := fmt.Sprintf("-p%d", port)
	combined := fmt.Sprintf("@%s:%d", host, port)
	for _, cmd := range commands {
		s := cmd.Command
		if strings.Contains(s, at) && (strings.Contains(s, spaced) || strings.Contains(s, tight)) {
			return true
		}
		if strings.Contains(s, combined) {
			return true
		}
	}
	return false
}

// DomainQueried reports whether any command mentions the domain,
// case-insensitively.
func DomainQueried(commands []Command, domain string) bool {
	want := strings.ToLower(domain)
	for _, cmd := range commands {
		if strings.Contains(strings.ToLower(cmd.Command), want) {
			return true
		}
	}
	return false
}
