package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"outreach-engine/internal/config"
	"outreach-engine/internal/gen"
	"outreach-engine/internal/gmail"
	"outreach-engine/internal/secrets"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	title := flag.String("title", "", "job title")
	url := flag.String("url", "", "job posting URL")
	manager := flag.String("manager", "", "hiring manager name")
	company := flag.String("company", "", "company name")
	jdFile := flag.String("jd_file", "", "path to a text file containing the full job description")
	companyURL := flag.String("company_url", "", "company website URL (optional, for hyperlinking)")
	createDraft := flag.Bool("create_draft", false, "create a Gmail draft with this email and attached resume")
	toEmail := flag.String("to_email", "", "recipient email address for the draft")
	resumePath := flag.String("resume_path", "docs/resume.pdf", "path to the resume PDF to attach")
	cfgPath := flag.String("config", "config/config.yml", "path to config file")
	flag.Parse()

	// guard against placeholder inputs
	required := map[string]string{
		"title":   *title,
		"url":     *url,
		"manager": *manager,
		"company": *company,
	}
	for name, val := range required {
		val = strings.TrimSpace(val)
		if val == "" || val == "..." {
			log.Printf("--%s cannot be empty or '...'; pass a real value", name)
			os.Exit(1)
		}
	}

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", *cfgPath, err)
	}
	cfg, res := config.NormalizeAndValidate(cfg)
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("[config] error: %s", e)
		}
		os.Exit(1)
	}

	llmKey, err := secrets.LLMAPIKey()
	if err != nil {
		log.Fatalf("LLM API key: %v", err)
	}

	jd := ""
	if *jdFile != "" {
		b, err := os.ReadFile(*jdFile)
		if err != nil {
			log.Printf("could not read job description file %q: %v", *jdFile, err)
		} else {
			jd = strings.TrimSpace(string(b))
		}
	}

	ctx := context.Background()
	generator := gen.NewGenerator(cfg, llmKey)

	draft, err := generator.Draft(ctx, gen.Request{
		JobTitle:       strings.TrimSpace(*title),
		JobURL:         strings.TrimSpace(*url),
		ManagerName:    strings.TrimSpace(*manager),
		Company:        strings.TrimSpace(*company),
		CompanyURL:     strings.TrimSpace(*companyURL),
		JobDescription: jd,
	})
	if err != nil {
		log.Fatalf("email generation failed: %v", err)
	}

	fmt.Println("\n===== GENERATED EMAIL =====")
	fmt.Println(draft.HTML)
	fmt.Println("===========================")

	if !*createDraft {
		return
	}

	if *toEmail == "" {
		log.Println("--to_email is required when using --create_draft")
		os.Exit(1)
	}
	if _, err := os.Stat(*resumePath); err != nil {
		log.Printf("resume PDF not found at: %s", *resumePath)
		os.Exit(1)
	}

	saver, err := gmail.NewAPIDraftSaver(ctx, cfg.Mail.CredentialsPath, cfg.Mail.TokenPath)
	if err != nil {
		log.Fatalf("gmail client: %v", err)
	}

	id, err := saver.SaveDraft(ctx, strings.TrimSpace(*toEmail), draft.Subject, draft.HTML, *resumePath)
	if err != nil {
		log.Fatalf("failed to create Gmail draft: %v", err)
	}
	log.Printf("draft created with id: %s", id)
}
