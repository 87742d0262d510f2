package physics

import "testing"

func TestKindCharge(t *testing.T) {
	if Electron.Charge() != -Proton.Charge() {
		t.Errorf("electron charge %g should be the negation of proton charge %g",
			Electron.Charge(), Proton.Charge())
	}
	if Neutron.Charge() != 0 {
		t.Errorf("expected zero neutron charge, got %g", Neutron.Charge())
	}
	if Proton.Charge() != ElementaryCharge {
		t.Errorf("expected proton charge %g, got %g", ElementaryCharge, Proton.Charge())
	}
}

func TestKindMass(t *testing.T) {
	if Electron.Mass() != ElectronMass {
		t.Errorf("expected electron mass %g, got %g", ElectronMass, Electron.Mass())
	}
	if Proton.Mass() != NucleonMass || Neutron.Mass() != NucleonMass {
		t.Error("proton and neutron should share the nucleon mass")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"electron", Electron},
		{"e", Electron},
		{"proton", Proton},
		{"p", Proton},
		{"neutron", Neutron},
		{"n", Neutron},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("muon"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
