package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"hoopster/internal/testutil"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	fake := testutil.NewFakeEuroleague(t)
	t.Setenv("EUROLEAGUE_API_V1_URL", fake.V1URL())
	t.Setenv("EUROLEAGUE_API_V2_URL", fake.V2URL())
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"clubs json", []string{"clubs"}, `"name": "Real Madrid"`},
		{"club yaml", []string{"-format", "yaml", "club", "MAD"}, "code: MAD"},
		{"legacy referees", []string{"referees-v1"}, `"code": "OAAB"`},
		{"paged referees", []string{"-offset", "2", "-limit", "1", "referees"}, "OALM"},
		{"eurocup info", []string{"-competition", "U", "competition"}, "EuroCup"},
		{"game", []string{"game", "E2023", "1"}, `"game_code": 1`},
		{"box score", []string{"stats", "E2023", "1"}, `"plus_minus": 12`},
		{"roster", []string{"roster", "E2023", "PAN"}, "SLOUKAS"},
		{"person", []string{"person", "P001"}, "Olympic silver medalist"},
		{"no videos", []string{"videos", "XXX"}, "[]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, c.args...)
			if code != exitOK {
				t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr)
			}
			if !strings.Contains(stdout, c.want) {
				t.Fatalf("expected %q in output:\n%s", c.want, stdout)
			}
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"nope"},
		{"club"},
		{"game", "E2023", "abc"},
		{"-format", "xml", "clubs"},
		{"-bogus-flag", "clubs"},
	}
	for _, args := range cases {
		if code, _, _ := runCLI(t, args...); code != exitUsage {
			t.Fatalf("%v: expected exit %d, got %d", args, exitUsage, code)
		}
	}
}

func TestRunRemoteErrorExitsOne(t *testing.T) {
	code, stdout, stderr := runCLI(t, "club", "NOPE")
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stdout != "" || !strings.Contains(stderr, "404") {
		t.Fatalf("expected error on stderr only, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestRunStrictConstructionFailure(t *testing.T) {
	code, _, stderr := runCLI(t, "venues")
	if code != exitError || !strings.Contains(stderr, "unknown field") {
		t.Fatalf("expected construction failure, got %d %q", code, stderr)
	}
}

func TestRunDumpsMetrics(t *testing.T) {
	code, _, stderr := runCLI(t, "-metrics", "referees")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (%s)", code, stderr)
	}
	if !strings.Contains(stderr, "api_requests_total") || !strings.Contains(stderr, `endpoint="referees"`) {
		t.Fatalf("expected metrics dump, got %q", stderr)
	}
}

func TestRunHelp(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")
	if code != exitOK || !strings.Contains(stderr, "season-records") {
		t.Fatalf("expected usage listing, got %d %q", code, stderr)
	}
}
