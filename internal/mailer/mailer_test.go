package mailer

import (
	"context"
	"testing"
)

func TestModeSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("full credentials select real mode", func(t *testing.T) {
		s := NewFromConfig(ctx, Config{Host: "smtp.x.com", Port: 587, User: "u", Pass: "p"})
		if _, ok := s.(*SMTPSender); !ok {
			t.Errorf("expected SMTPSender, got %T", s)
		}
	})

	t.Run("any missing credential selects simulation", func(t *testing.T) {
		cases := []Config{
			{Port: 587, User: "u", Pass: "p"},
			{Host: "smtp.x.com", Port: 587, Pass: "p"},
			{Host: "smtp.x.com", Port: 587, User: "u"},
			{},
		}
		for _, cfg := range cases {
			s := NewFromConfig(ctx, cfg)
			if _, ok := s.(*LogSender); !ok {
				t.Errorf("config %+v: expected LogSender, got %T", cfg, s)
			}
		}
	})
}

func TestSMTPSenderFromFallback(t *testing.T) {
	s := NewSMTPSender(Config{Host: "smtp.x.com", Port: 587, User: "bot@x.com", Pass: "p"})
	if s.from != "bot@x.com" {
		t.Errorf("expected From to fall back to user, got %q", s.from)
	}

	s = NewSMTPSender(Config{Host: "smtp.x.com", Port: 587, User: "bot@x.com", Pass: "p", From: "onboarding@x.com"})
	if s.from != "onboarding@x.com" {
		t.Errorf("expected explicit From, got %q", s.from)
	}
}

func TestLogSenderNeverFails(t *testing.T) {
	s := &LogSender{}
	if err := s.Send(context.Background(), "x@x.com", "asunto", "cuerpo"); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
