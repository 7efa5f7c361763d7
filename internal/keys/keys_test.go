package keys

import (
	"reflect"
	"testing"
)

func TestSnakeReferenceCases(t *testing.T) {
	cases := map[string]string{
		"isoCode":         "iso_code",
		"gameCode":        "game_code",
		"ISOCode":         "iso_code",
		"ABCDef":          "abc_def",
		"player2Name":     "player2_name",
		"abc1D":           "abc1_d",
		"code":            "code",
		"already_snake":   "already_snake",
		"passportSurname": "passport_surname",
		"twitterAccount":  "twitter_account",
		"fieldGoalsMade2": "field_goals_made2",
		"HTTPServer":      "http_server",
		"":                "",
	}

	for input, want := range cases {
		if got := Snake(input); got != want {
			t.Fatalf("Snake(%q) expected %q, got %q", input, want, got)
		}
	}
}

func TestSnakeIsIdempotent(t *testing.T) {
	inputs := []string{"isoCode", "ISOCode", "ABCDef", "player2Name", "abc1D", "aliasRaw", "X"}
	for _, in := range inputs {
		once := Snake(in)
		if twice := Snake(once); twice != once {
			t.Fatalf("Snake not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeRecursesIntoMapsAndSequences(t *testing.T) {
	input := map[string]any{
		"gameCode": 12,
		"localClub": map[string]any{
			"clubCode": "MAD",
			"countryInfo": map[string]any{
				"isoCode": "ESP",
			},
		},
		"refereeList": []any{
			map[string]any{"refereeCode": "R1"},
			"plainValue",
			[]any{map[string]any{"deepKey": true}},
		},
	}

	got := Normalize(input)
	want := map[string]any{
		"game_code": 12,
		"local_club": map[string]any{
			"club_code": "MAD",
			"country_info": map[string]any{
				"iso_code": "ESP",
			},
		},
		"referee_list": []any{
			map[string]any{"referee_code": "R1"},
			"plainValue",
			[]any{map[string]any{"deep_key": true}},
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected normalized map:\n got  %#v\n want %#v", got, want)
	}
	if _, ok := input["gameCode"]; !ok {
		t.Fatalf("expected input map to be left untouched")
	}
}

func TestNormalizeNil(t *testing.T) {
	if got := Normalize(nil); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}

func TestNormalizeCollisionsAreDeterministic(t *testing.T) {
	for i := 0; i < 20; i++ {
		got := Normalize(map[string]any{"gameCode": 1, "game_code": 2, "GameCode": 3})
		if got["game_code"] != 2 {
			t.Fatalf("expected the snake_case key to win, got %#v", got)
		}

		got = Normalize(map[string]any{"gameCode": 1, "GameCode": 3})
		if got["game_code"] != 3 {
			t.Fatalf("expected the lexically smallest key to win, got %#v", got)
		}
	}
}
