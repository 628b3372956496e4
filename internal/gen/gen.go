package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"outreach-engine/internal/config"
)

// Request carries everything the generator needs for one outreach email.
type Request struct {
	JobTitle       string
	JobURL         string
	ManagerName    string
	Company        string
	CompanyURL     string
	JobDescription string
}

// Draft is a successfully generated email. Failures travel as errors, never
// as sentinel strings inside the body.
type Draft struct {
	Subject string
	HTML    string
}

type Generator struct {
	cfg        config.Config
	apiKey     string
	hc         *http.Client
	background string
	style      map[string]any
}

// NewGenerator loads the candidate background and style profile up front.
// Both are optional inputs: a missing file logs a warning and the generator
// runs with what it has.
func NewGenerator(cfg config.Config, apiKey string) *Generator {
	g := &Generator{
		cfg:    cfg,
		apiKey: apiKey,
		hc:     &http.Client{Timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second},
	}

	if p := cfg.Profile.BackgroundFile; p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			log.Printf("[gen] could not read background file %q: %v", p, err)
		} else {
			g.background = strings.TrimSpace(string(b))
		}
	}

	if p := cfg.Profile.StyleProfileFile; p != "" {
		style, err := LoadStyleProfile(p)
		if err != nil {
			log.Printf("[gen] could not load style profile: %v", err)
		} else {
			g.style = style
		}
	}

	return g
}

// Draft writes a personalized outreach email as the candidate, with the
// fixed greeting/signoff frame added around the model body.
func (g *Generator) Draft(ctx context.Context, req Request) (Draft, error) {
	prompt := g.buildPrompt(req)

	system := fmt.Sprintf(
		"Write as %s in first-person, following the style profile and background. Only output the body of the email, no greeting or signoff.",
		g.cfg.Profile.CandidateName)

	content, err := g.chatCompletion(ctx, system, prompt, false)
	if err != nil {
		return Draft{}, err
	}
	if strings.TrimSpace(content) == "" {
		return Draft{}, fmt.Errorf("model returned empty content")
	}

	body := CleanBody(content, g.cfg.Profile.CandidateName)
	html := FormatHTML(req.ManagerName, body, firstField(g.cfg.Profile.CandidateName))

	return Draft{
		Subject: fmt.Sprintf("%s – %s", req.JobTitle, req.Company),
		HTML:    html,
	}, nil
}

func (g *Generator) buildPrompt(req Request) string {
	styleJSON := "{}"
	if g.style != nil {
		if b, err := json.Marshal(g.style); err == nil {
			styleJSON = string(b)
		}
	}

	jobLink := fmt.Sprintf(`<a href="%s">%s</a>`, req.JobURL, req.JobTitle)
	companyHTML := req.Company
	if req.CompanyURL != "" {
		companyHTML = fmt.Sprintf(`<a href="%s">%s</a>`, req.CompanyURL, req.Company)
	}

	links := g.cfg.Profile.Links
	var linkLines []string
	if links.LinkedIn != "" {
		linkLines = append(linkLines, fmt.Sprintf(`LinkedIn: <a href="%s">%s</a>`, links.LinkedIn, links.LinkedIn))
	}
	if links.Portfolio != "" {
		linkLines = append(linkLines, fmt.Sprintf(`Portfolio: <a href="%s">%s</a>`, links.Portfolio, links.Portfolio))
	}
	if links.GitHub != "" {
		linkLines = append(linkLines, fmt.Sprintf(`GitHub: <a href="%s">%s</a>`, links.GitHub, links.GitHub))
	}
	linkBlock := "None provided."
	if len(linkLines) > 0 {
		linkBlock = strings.Join(linkLines, "\n")
	}

	name := g.cfg.Profile.CandidateName

	return fmt.Sprintf(`You are acting as *%s*.

==== BACKGROUND (RESUME) ====
%s

==== STYLE PROFILE (JSON, MAY BE EMPTY) ====
%s

==== JOB DESCRIPTION (MAY BE EMPTY) ====
%s

==== PERSONAL LINKS (HTML) ====
%s

CONTEXT:
- Role: %s
- Role Hyperlink: %s
- Company: %s
- Job Posting URL (raw): %s
- Hiring Manager: %s

TASK:
Write ONLY the main body of an outreach email to this hiring manager.
The system will add "Hi %s," at the top and the signoff at the bottom.

BODY WRITING RULES:
- Write in first-person ("I") as %s.
- Do NOT include any greeting at the top.
- Do NOT include any signoff or name at the bottom.
- Do NOT include raw footer lines or standalone LinkedIn/GitHub URLs.
- Match the tone implied by the style profile.
- Absolutely avoid em dashes. Use commas or short sentences instead.
- Use correct grammar and standard professional phrasing.
- When referencing the role, you may refer to it as %s.
- Explicitly mention that the resume is attached.
- Highlight 2-3 real overlaps between the background and the job description.
- Invite a short call or ask for guidance on the next steps.
- Keep the body under ~150 words.
- Avoid generic corporate cliches and avoid sounding desperate or apologetic.
- The output should be plain text suitable for an email body, but may contain simple HTML like <a href="...">text</a>.`,
		name,
		g.background,
		styleJSON,
		req.JobDescription,
		linkBlock,
		req.JobTitle,
		jobLink,
		companyHTML,
		req.JobURL,
		req.ManagerName,
		req.ManagerName,
		name,
		jobLink,
	)
}
