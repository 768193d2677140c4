package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestCredentials(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name         string
		input        string
		user         string
		password     string
		wantUser     string
		wantPassword string
		wantPrompt   string
	}{
		{
			name:         "prompts for both",
			input:        "root\ns3cret pass\n",
			wantUser:     "root",
			wantPassword: "s3cret pass",
			wantPrompt:   "Enter username: Enter password: ",
		},
		{
			name:         "configured user",
			input:        "hunter2\r\n",
			user:         "critic",
			wantUser:     "critic",
			wantPassword: "hunter2",
			wantPrompt:   "Enter password: ",
		},
		{
			name:         "nothing to ask",
			user:         "critic",
			password:     "hunter2",
			wantUser:     "critic",
			wantPassword: "hunter2",
		},
		{
			name:         "last line without newline",
			input:        "root\npw",
			wantUser:     "root",
			wantPassword: "pw",
			wantPrompt:   "Enter username: Enter password: ",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tc.input), &out)

			user, password, err := p.Credentials(tc.user, tc.password)
			if err != nil {
				t.Fatalf("credentials: %v", err)
			}
			if user != tc.wantUser || password != tc.wantPassword {
				t.Errorf("got %q/%q, want %q/%q", user, password, tc.wantUser, tc.wantPassword)
			}
			if out.String() != tc.wantPrompt {
				t.Errorf("prompt = %q, want %q", out.String(), tc.wantPrompt)
			}
		})
	}
}

func TestCredentialsEmptyInput(t *testing.T) {
	t.Parallel()

	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	if _, _, err := p.Credentials("", ""); err == nil {
		t.Fatal("expected an error when input ends before the username")
	}
}
