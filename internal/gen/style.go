package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const styleSampleMaxChars = 1500

func LoadStyleProfile(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var profile map[string]any
	if err := json.Unmarshal(b, &profile); err != nil {
		return nil, fmt.Errorf("parse style profile %q: %w", path, err)
	}
	return profile, nil
}

// BuildStyleProfile reads sample emails from samplesDir, asks the model to
// summarize how the candidate writes, and saves the JSON profile to outPath.
func (g *Generator) BuildStyleProfile(ctx context.Context, samplesDir, outPath string) error {
	samples, err := loadSamples(samplesDir)
	if err != nil {
		return err
	}

	joined := strings.Join(samples, "\n\n--- SAMPLE ---\n\n")

	prompt := fmt.Sprintf(`You are a writing style analyst.

You will be given multiple messages written by the SAME person (%s).
Your job is to analyze how this person writes and then summarize the style.

Messages (verbatim):

%s

Return STRICTLY a JSON object with these keys:
- "tone": short description of overall tone (e.g., "warm, confident, direct")
- "formality": "informal" | "semi-formal" | "formal"
- "sentence_style": notes on average sentence length, rhythm, structure
- "voice_principles": list of short bullets with rules like "use first person", "show rather than tell"
- "phrases_to_use": list of words/phrases this person naturally uses
- "phrases_to_avoid": list of words/phrases that do NOT sound like them (e.g. corporate cliches)
- "do_nots": list of behavioral rules (e.g. "do not sound desperate", "do not over-apologize")

Make it concise but specific. Do NOT wrap in markdown. Only output JSON.`,
		g.cfg.Profile.CandidateName, joined)

	content, err := g.chatCompletion(ctx,
		"You are a precise writing style analyst. Output valid JSON only.",
		prompt, true)
	if err != nil {
		return err
	}

	var profile map[string]any
	if err := json.Unmarshal([]byte(content), &profile); err != nil {
		return fmt.Errorf("model did not return valid JSON: %w", err)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}

func loadSamples(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var texts []string
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		txt := strings.TrimSpace(string(b))
		if txt == "" {
			continue
		}
		if len(txt) > styleSampleMaxChars {
			txt = txt[:styleSampleMaxChars]
		}
		texts = append(texts, txt)
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no usable .txt samples in %s", dir)
	}
	return texts, nil
}
