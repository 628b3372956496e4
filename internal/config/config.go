package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Links struct {
	LinkedIn  string `yaml:"linkedin"`
	Portfolio string `yaml:"portfolio"`
	GitHub    string `yaml:"github"`
}

type Config struct {
	Profile struct {
		CandidateName    string `yaml:"candidate_name"`
		BackgroundFile   string `yaml:"background_file"`
		StyleProfileFile string `yaml:"style_profile_file"`
		StyleSamplesDir  string `yaml:"style_samples_dir"`
		Links            Links  `yaml:"links"`
	} `yaml:"profile"`

	Filters struct {
		PositiveTitles []string `yaml:"positive_titles"`
		NegativeTitles []string `yaml:"negative_titles"`
	} `yaml:"filters"`

	Contacts struct {
		RoleKeywords      []string `yaml:"role_keywords"`
		MaxContacts       int      `yaml:"max_contacts"`
		ProviderLimit     int      `yaml:"provider_limit"`
		ProviderBaseURL   string   `yaml:"provider_base_url"`
		FallbackLocalPart string   `yaml:"fallback_local_part"`
		TimeoutSeconds    int      `yaml:"timeout_seconds"`
	} `yaml:"contacts"`

	Scrape struct {
		MaxChars       int      `yaml:"max_chars"`
		SkipJDHosts    []string `yaml:"skip_jd_hosts"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
		ReqPerSec      float64  `yaml:"req_per_sec"`
		Burst          int      `yaml:"burst"`
	} `yaml:"scrape"`

	LLM struct {
		BaseURL        string `yaml:"base_url"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"llm"`

	Mail struct {
		Transport       string `yaml:"transport"` // gmail_api | imap
		CredentialsPath string `yaml:"credentials_path"`
		TokenPath       string `yaml:"token_path"`
		IMAPHost        string `yaml:"imap_host"`
		IMAPPort        int    `yaml:"imap_port"`
		Username        string `yaml:"username"`
		DraftsMailbox   string `yaml:"drafts_mailbox"`
	} `yaml:"mail"`

	Sheets struct {
		CredentialsPath string `yaml:"credentials_path"`
		TokenPath       string `yaml:"token_path"`
	} `yaml:"sheets"`
}

// Default returns the built-in configuration. Keyword lists here are the
// tunable baseline; a config file overrides any section wholesale.
func Default() Config {
	var cfg Config

	cfg.Profile.CandidateName = "Hiring Candidate"
	cfg.Profile.StyleProfileFile = "style_profile.json"
	cfg.Profile.StyleSamplesDir = "style_samples"

	cfg.Filters.PositiveTitles = []string{
		"data scientist",
		"machine learning engineer",
		"ml engineer",
		"applied scientist",
		"research scientist",
		"ml scientist",
		"quantitative researcher",
		"ml research engineer",
		"ai engineer",
		"ml ops",
		"mlops",
		"risk modeling",
		"risk analytics",
		"data analyst",
	}
	cfg.Filters.NegativeTitles = []string{
		"product manager",
		"account manager",
		"sales",
		"customer success",
		"frontend",
		"backend",
		"full stack",
		"marketing",
		"designer",
		"intern",
		"junior",
	}

	cfg.Contacts.RoleKeywords = []string{
		"data",
		"machine learning",
		"ml",
		"ai",
		"analytics",
		"science",
		"scientist",
		"recruiter",
		"talent",
		"people",
		"hiring",
		"engineering manager",
		"head of",
		"vp",
		"director",
	}
	cfg.Contacts.MaxContacts = 5
	cfg.Contacts.ProviderLimit = 50
	cfg.Contacts.ProviderBaseURL = "https://api.hunter.io/v2"
	cfg.Contacts.FallbackLocalPart = "jobs"
	cfg.Contacts.TimeoutSeconds = 15

	cfg.Scrape.MaxChars = 8000
	cfg.Scrape.SkipJDHosts = []string{"linkedin.com"}
	cfg.Scrape.TimeoutSeconds = 15
	cfg.Scrape.ReqPerSec = 1
	cfg.Scrape.Burst = 2

	cfg.LLM.BaseURL = "https://openrouter.ai/api/v1"
	cfg.LLM.Model = "mistralai/mistral-7b-instruct"
	cfg.LLM.TimeoutSeconds = 60

	cfg.Mail.Transport = "gmail_api"
	cfg.Mail.CredentialsPath = "credentials.json"
	cfg.Mail.TokenPath = "token.json"
	cfg.Mail.IMAPHost = "imap.gmail.com"
	cfg.Mail.IMAPPort = 993
	cfg.Mail.DraftsMailbox = "[Gmail]/Drafts"

	cfg.Sheets.CredentialsPath = "credentials.json"
	cfg.Sheets.TokenPath = "token_sheets.json"

	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// LoadOrDefault loads path if it exists and falls back to the built-in
// defaults when it doesn't. A present-but-broken file is still an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
