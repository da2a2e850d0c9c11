package external

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

// fakeSMTPServer accepts one session and records the DATA payload
type fakeSMTPServer struct {
	listener net.Listener
	rejectTo string

	mu       sync.Mutex
	from     string
	to       string
	data     string
	finished chan struct{}
}

func startFakeSMTPServer(t *testing.T) *fakeSMTPServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &fakeSMTPServer{listener: listener, finished: make(chan struct{})}
	t.Cleanup(func() { _ = listener.Close() })

	go server.serve()
	return server
}

func (s *fakeSMTPServer) port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

func (s *fakeSMTPServer) serve() {
	defer close(s.finished)

	conn, err := s.listener.Accept()
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	reader := bufio.NewReader(conn)
	reply := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }

	reply("220 fake ESMTP")
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		command := strings.ToUpper(line)

		switch {
		case strings.HasPrefix(command, "EHLO"), strings.HasPrefix(command, "HELO"):
			reply("250 fake")
		case strings.HasPrefix(command, "MAIL FROM:"):
			s.mu.Lock()
			s.from = line[len("MAIL FROM:"):]
			s.mu.Unlock()
			reply("250 OK")
		case strings.HasPrefix(command, "RCPT TO:"):
			to := line[len("RCPT TO:"):]
			if s.rejectTo != "" && strings.Contains(to, s.rejectTo) {
				reply("550 no such user")
				continue
			}
			s.mu.Lock()
			s.to = to
			s.mu.Unlock()
			reply("250 OK")
		case command == "DATA":
			reply("354 go ahead")
			var body strings.Builder
			for {
				dataLine, err := reader.ReadString('\n')
				if err != nil {
					return
				}
				if dataLine == ".\r\n" {
					break
				}
				body.WriteString(dataLine)
			}
			s.mu.Lock()
			s.data = body.String()
			s.mu.Unlock()
			reply("250 queued")
		case command == "QUIT":
			reply("221 bye")
			return
		default:
			reply("502 not implemented")
		}
	}
}

func TestSMTPEmailProviderAdapter_ValidateConfiguration(t *testing.T) {
	valid := EmailProviderConfig{Host: "smtp.example.com", Port: 587, FromName: "AllWeather", FromAddr: "weather@example.com"}

	tests := []struct {
		name        string
		mutate      func(c *EmailProviderConfig)
		expectError bool
	}{
		{name: "Valid", mutate: func(c *EmailProviderConfig) {}},
		{name: "MissingHost", mutate: func(c *EmailProviderConfig) { c.Host = "" }, expectError: true},
		{name: "PortZero", mutate: func(c *EmailProviderConfig) { c.Port = 0 }, expectError: true},
		{name: "PortTooHigh", mutate: func(c *EmailProviderConfig) { c.Port = 70000 }, expectError: true},
		{name: "MissingFromAddress", mutate: func(c *EmailProviderConfig) { c.FromAddr = "" }, expectError: true},
		{name: "MissingFromName", mutate: func(c *EmailProviderConfig) { c.FromName = "" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := NewSMTPEmailProviderAdapter(cfg).ValidateConfiguration()
			if tt.expectError {
				assert.True(t, errors.IsConfigurationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSMTPEmailProviderAdapter_SendEmailValidation(t *testing.T) {
	provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{Host: "127.0.0.1", Port: 1, FromName: "A", FromAddr: "a@example.com"})

	tests := []struct {
		name   string
		params ports.EmailParams
	}{
		{"EmptyRecipient", ports.EmailParams{Subject: "s", Body: "b"}},
		{"EmptySubject", ports.EmailParams{To: "x@example.com", Body: "b"}},
		{"EmptyBody", ports.EmailParams{To: "x@example.com", Subject: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(provider.SendEmail(context.Background(), tt.params)))
		})
	}
}

func TestSMTPEmailProviderAdapter_SendEmail(t *testing.T) {
	server := startFakeSMTPServer(t)
	provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{
		Host: "127.0.0.1", Port: server.port(), FromName: "AllWeather", FromAddr: "weather@example.com",
	})

	err := provider.SendEmail(context.Background(), ports.EmailParams{
		To:      "user@example.com",
		Subject: "Weather in Moscow",
		Body:    "Clear sky, 5°C",
	})
	require.NoError(t, err)
	<-server.finished

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Contains(t, server.from, "weather@example.com")
	assert.Contains(t, server.to, "user@example.com")
	assert.Contains(t, server.data, "From: AllWeather <weather@example.com>\r\n")
	assert.Contains(t, server.data, "Subject: Weather in Moscow\r\n")
	assert.Contains(t, server.data, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.Contains(t, server.data, "Clear sky, 5°C")
}

func TestSMTPEmailProviderAdapter_SendEmailFailures(t *testing.T) {
	t.Run("RecipientRejected", func(t *testing.T) {
		server := startFakeSMTPServer(t)
		server.rejectTo = "nobody@example.com"
		provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{Host: "127.0.0.1", Port: server.port(), FromName: "A", FromAddr: "a@example.com"})

		err := provider.SendEmail(context.Background(), ports.EmailParams{To: "nobody@example.com", Subject: "s", Body: "b"})
		assert.Equal(t, errors.NotificationError, errors.TypeOf(err))
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		port := listener.Addr().(*net.TCPAddr).Port
		require.NoError(t, listener.Close())

		provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{Host: "127.0.0.1", Port: port, FromName: "A", FromAddr: "a@example.com"})
		err = provider.SendEmail(context.Background(), ports.EmailParams{To: "x@example.com", Subject: "s", Body: "b"})
		assert.Equal(t, errors.NotificationError, errors.TypeOf(err))
		assert.Contains(t, err.Error(), "failed to connect")
	})
}

func TestSMTPEmailProviderAdapter_BuildMessage(t *testing.T) {
	provider := NewSMTPEmailProviderAdapter(EmailProviderConfig{FromName: "AllWeather", FromAddr: "weather@example.com"})

	html := provider.buildMessage(ports.EmailParams{To: "u@example.com", Subject: "Hi", Body: "<b>x</b>", IsHTML: true})
	assert.True(t, strings.HasPrefix(html, "From: AllWeather <weather@example.com>\r\nTo: u@example.com\r\n"))
	assert.Contains(t, html, "Content-Type: text/html; charset=UTF-8\r\n\r\n<b>x</b>")
}
