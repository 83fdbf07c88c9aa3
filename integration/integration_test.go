//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sidemail "github.com/sidemail/sidemail-go"
)

var (
	apiKey      string
	host        string
	fromAddress string
	toAddress   string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("SIDEMAIL_API_KEY")
	host = os.Getenv("SIDEMAIL_HOST")
	fromAddress = os.Getenv("SIDEMAIL_TEST_FROM")
	toAddress = os.Getenv("SIDEMAIL_TEST_TO")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: SIDEMAIL_API_KEY not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *sidemail.Client {
	t.Helper()

	opts := []sidemail.Option{sidemail.WithTimeout(30 * time.Second)}
	if host != "" {
		opts = append(opts, sidemail.WithHost(host))
	}

	client, err := sidemail.New(apiKey, opts...)
	require.NoError(t, err)
	return client
}

func TestIntegration_ProjectGet(t *testing.T) {
	client := newClient(t)

	project, err := client.Project.Get(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, project.Value())
}

func TestIntegration_ContactLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()
	email := "sdk-integration-" + time.Now().Format("20060102150405") + "@example.com"

	_, err := client.Contacts.CreateOrUpdate(ctx, &sidemail.Contact{EmailAddress: email, Identifier: "sdk-integration"})
	require.NoError(t, err)

	_, err = client.Contacts.Find(ctx, email)
	require.NoError(t, err)

	_, err = client.Contacts.List(ctx)
	require.NoError(t, err)

	_, err = client.Contacts.Delete(ctx, email)
	require.NoError(t, err)
}

func TestIntegration_InvalidAPIKey(t *testing.T) {
	client, err := sidemail.New("invalid-key", sidemail.WithHost(newClient(t).Host()))
	require.NoError(t, err)

	_, err = client.Project.Get(context.Background())

	var apiErr *sidemail.APIError
	require.True(t, errors.As(err, &apiErr), "error = %v", err)
	assert.NotEmpty(t, apiErr.ErrorCode)
}

func TestIntegration_SendEmail(t *testing.T) {
	if fromAddress == "" || toAddress == "" {
		t.Skip("SIDEMAIL_TEST_FROM and SIDEMAIL_TEST_TO not set")
	}
	client := newClient(t)

	resp, err := client.SendEmail(context.Background(), &sidemail.EmailRequest{
		ToAddress:   toAddress,
		FromAddress: fromAddress,
		Subject:     "sidemail-go integration test",
		Text:        "Sent by the sidemail-go integration tests.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Get("id"))
}
