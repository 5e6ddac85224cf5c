package domain

import (
	"encoding/json"
	"testing"
)

func TestTeamDecodesProviderShape(t *testing.T) {
	raw := `{"Key":"BOS","Name":"Red Sox","City":"Boston"}`

	var team Team
	if err := json.Unmarshal([]byte(raw), &team); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if team.Key != "BOS" || team.Name != "Red Sox" {
		t.Fatalf("unexpected team: %+v", team)
	}
}

func TestStandingEntryDecodesProviderShape(t *testing.T) {
	raw := `{"League":"AL","Division":"East","Name":"Yankees","Wins":91}`

	var entry StandingEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if entry.League != "AL" || entry.Division != "East" || entry.Name != "Yankees" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}
