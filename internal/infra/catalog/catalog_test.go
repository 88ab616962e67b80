package catalog

import "testing"

func TestLookupDeed(t *testing.T) {
	tests := []struct {
		id        string
		wantCandy int
	}{
		{"table", 1},
		{"quran", 1},
		{"sibling", 1},
		{"unasked", 3},
		{"bighelp", 3},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d := LookupDeed(tt.id)
			if d == nil {
				t.Fatalf("LookupDeed(%q) = nil, want entry", tt.id)
			}
			if d.Candy != tt.wantCandy {
				t.Errorf("LookupDeed(%q).Candy = %d, want %d", tt.id, d.Candy, tt.wantCandy)
			}
		})
	}
}

func TestLookupDeedUnknown(t *testing.T) {
	if d := LookupDeed("homework"); d != nil {
		t.Errorf("LookupDeed(unknown) = %v, want nil", d)
	}
}

func TestLookupReward(t *testing.T) {
	r := LookupReward("icecream")
	if r == nil {
		t.Fatal("icecream not found in catalog")
	}
	if r.Candy != 15 {
		t.Errorf("icecream cost = %d, want 15", r.Candy)
	}
	if r := LookupReward("pony"); r != nil {
		t.Errorf("LookupReward(unknown) = %v, want nil", r)
	}
}

func TestCatalogShape(t *testing.T) {
	if len(Deeds) != 8 {
		t.Errorf("len(Deeds) = %d, want 8", len(Deeds))
	}
	if len(Rewards) != 9 {
		t.Errorf("len(Rewards) = %d, want 9", len(Rewards))
	}

	var multiple, cooldown int
	for _, d := range Deeds {
		if d.Candy < 1 || d.Candy > 3 {
			t.Errorf("deed %q candy = %d, want 1..3", d.ID, d.Candy)
		}
		if d.AllowMultiple {
			multiple++
		}
		if d.CooldownDays > 0 {
			cooldown++
		}
	}
	if multiple != 1 {
		t.Errorf("deeds with AllowMultiple = %d, want 1", multiple)
	}
	if cooldown != 1 {
		t.Errorf("deeds with a cooldown = %d, want 1", cooldown)
	}

	for _, r := range Rewards {
		if r.Candy < 15 || r.Candy > 50 {
			t.Errorf("reward %q cost = %d, want 15..50", r.ID, r.Candy)
		}
		if r.Emoji == "" {
			t.Errorf("reward %q has no emoji", r.ID)
		}
	}
}

func TestSiblingDeedHasTwoDayCooldown(t *testing.T) {
	d := LookupDeed(SiblingDeedID)
	if d == nil {
		t.Fatal("sibling deed missing from catalog")
	}
	if d.CooldownDays != 2 {
		t.Errorf("sibling CooldownDays = %d, want 2", d.CooldownDays)
	}
}
