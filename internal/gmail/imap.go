package gmail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// IMAPDraftSaver writes drafts by appending the raw message to the Gmail
// drafts mailbox over IMAP, for setups using an app password instead of an
// OAuth client.
type IMAPDraftSaver struct {
	Addr     string // host:port, e.g. imap.gmail.com:993
	Username string
	Password string
	Mailbox  string // usually [Gmail]/Drafts
}

func (s *IMAPDraftSaver) SaveDraft(ctx context.Context, to, subject, htmlBody, resumePath string) (string, error) {
	raw, err := buildMIME(to, subject, htmlBody, resumePath)
	if err != nil {
		return "", err
	}

	c, err := dialAndLogin(ctx, s.Addr, s.Username, s.Password)
	if err != nil {
		return "", err
	}
	defer logoutAndClose(c)

	mailbox := s.Mailbox
	if mailbox == "" {
		mailbox = "[Gmail]/Drafts"
	}

	appendCmd := c.Append(mailbox, int64(len(raw)), &imap.AppendOptions{
		Flags: []imap.Flag{imap.FlagDraft},
		Time:  time.Now(),
	})
	if _, err := appendCmd.Write(raw); err != nil {
		return "", fmt.Errorf("imap append write: %w", err)
	}
	if err := appendCmd.Close(); err != nil {
		return "", fmt.Errorf("imap append close: %w", err)
	}
	data, err := appendCmd.Wait()
	if err != nil {
		return "", fmt.Errorf("imap append: %w", err)
	}

	if data != nil && data.UID != 0 {
		return fmt.Sprintf("imap:%d", data.UID), nil
	}
	return "imap:appended", nil
}

func dialAndLogin(ctx context.Context, addr, username, password string) (*imapclient.Client, error) {
	if addr == "" {
		return nil, errors.New("imap addr is required")
	}
	if username == "" || password == "" {
		return nil, errors.New("imap username/password is required")
	}

	host := addr
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	c, err := imapclient.DialTLS(addr, &imapclient.Options{
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: host,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("imap dial tls: %w", err)
	}

	// Best-effort close on context cancel.
	go func() {
		<-ctx.Done()
		_ = c.Close()
	}()

	if err := c.Login(username, password).Wait(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("imap login: %w", err)
	}

	return c, nil
}

func logoutAndClose(c *imapclient.Client) {
	if c == nil {
		return
	}
	_ = c.Logout().Wait()
	_ = c.Close()
}
