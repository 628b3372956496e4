package gmail

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/gmail/v1"
)

// APIDraftSaver creates Gmail drafts through the Gmail API.
type APIDraftSaver struct {
	srv *gmail.Service
}

func NewAPIDraftSaver(ctx context.Context, credentialsPath, tokenPath string) (*APIDraftSaver, error) {
	srv, err := NewService(ctx, credentialsPath, tokenPath)
	if err != nil {
		return nil, err
	}
	return &APIDraftSaver{srv: srv}, nil
}

func (s *APIDraftSaver) SaveDraft(ctx context.Context, to, subject, htmlBody, resumePath string) (string, error) {
	raw, err := buildMIME(to, subject, htmlBody, resumePath)
	if err != nil {
		return "", err
	}

	draft := &gmail.Draft{
		Message: &gmail.Message{
			Raw: base64.URLEncoding.EncodeToString(raw),
		},
	}

	created, err := s.srv.Users.Drafts.Create("me", draft).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail drafts.create: %w", err)
	}
	return created.Id, nil
}
