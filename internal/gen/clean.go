package gen

import "strings"

var signoffPhrases = map[string]bool{
	"thanks":        true,
	"thanks,":       true,
	"thank you":     true,
	"thank you,":    true,
	"best":          true,
	"best,":         true,
	"sincerely":     true,
	"sincerely,":    true,
	"kind regards":  true,
	"kind regards,": true,
	"regards":       true,
	"regards,":      true,
}

// CleanBody strips everything the model was told not to add but sometimes
// adds anyway: leading greetings, signoffs, name lines, bracketed
// placeholders and link footers. The caller re-adds greeting and signoff, so
// anything resembling them here is noise.
func CleanBody(raw, candidateName string) string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}

	// leading greeting lines ("Hi Sam," / "Dear Dr. Lee:") plus a following blank
	start := 0
	for start < len(lines) {
		low := strings.ToLower(strings.TrimSpace(lines[start]))
		greeting := (strings.HasPrefix(low, "hi ") ||
			strings.HasPrefix(low, "hello ") ||
			strings.HasPrefix(low, "dear ")) &&
			(strings.HasSuffix(low, ",") || strings.HasSuffix(low, ":"))
		if !greeting {
			break
		}
		start++
		if start < len(lines) && strings.TrimSpace(lines[start]) == "" {
			start++
		}
	}
	lines = lines[start:]

	firstName := strings.ToLower(firstField(candidateName))

	var kept []string
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" {
			kept = append(kept, "")
			continue
		}
		low := strings.ToLower(s)

		// bracketed placeholder/footer lines: [Resume attached as a file]
		if strings.HasPrefix(low, "[") && strings.HasSuffix(low, "]") {
			continue
		}
		// lines that are (or contain) the candidate's name
		if firstName != "" && strings.Contains(low, firstName) {
			continue
		}
		if signoffPhrases[low] {
			continue
		}
		if strings.Contains(low, "linkedin") || strings.Contains(low, "github") {
			continue
		}

		kept = append(kept, s)
	}

	// collapse blank runs, drop trailing blanks
	var out []string
	for _, l := range kept {
		if l == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, l)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	var paras []string
	for _, l := range out {
		if l != "" {
			paras = append(paras, l)
		}
	}
	return strings.Join(paras, "\n")
}

// FormatHTML wraps a cleaned body in the fixed greeting/signoff frame,
// one paragraph per body line.
func FormatHTML(managerName, body, signoffName string) string {
	var paras []string
	for _, l := range strings.Split(strings.TrimSpace(body), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			paras = append(paras, l)
		}
	}

	greeting := "Hi " + managerName + ",<br><br>"
	closing := "<br><br>Thanks,<br>" + signoffName
	return greeting + strings.Join(paras, "<br><br>") + closing
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
