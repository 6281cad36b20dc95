package core

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{" normal ", DifficultyNormal, false},
		{"", DifficultyNormal, false},
		{"3", DifficultyHard, false},
		{"nightmare", DifficultyNormal, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDifficulty(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseDifficulty(%q) = %s, expected %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestDifficultyNamesRoundTrip(t *testing.T) {
	for _, d := range Difficulties {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
		parsed, err := ParseDifficulty(d.String())
		if err != nil || parsed != d {
			t.Errorf("ParseDifficulty(%q) = %s, %v", d.String(), parsed, err)
		}
	}
	if Difficulty(7).Valid() {
		t.Error("Difficulty(7) should be invalid")
	}
}

func TestIntentConstructors(t *testing.T) {
	if in := DuckHeld(false); in.Kind != IntentDuck || in.Held {
		t.Errorf("DuckHeld(false) = %+v", in)
	}
	if in := DifficultySelected(DifficultyHard); in.Kind != IntentSelectDifficulty || in.Difficulty != DifficultyHard {
		t.Errorf("DifficultySelected(hard) = %+v", in)
	}
	if Quit().Kind.String() != "Quit" {
		t.Errorf("Quit().Kind.String() = %q", Quit().Kind.String())
	}
}
