package physics

import "fmt"

// Kind identifies the particle species. It is immutable once a particle is
// created and determines the derived charge and mass constants.
type Kind int

const (
	Electron Kind = iota
	Proton
	Neutron
)

// Physical constants of the model. Deliberately non-physical magnitudes,
// tuned for the visual dynamics rather than realism; changing any of them
// changes every trajectory.
const (
	// CoulombK is the force constant k in the axis-separable force law.
	CoulombK float32 = 9e9

	// ElementaryCharge is the unsigned charge quantum in Coulombs.
	ElementaryCharge float32 = 1.6e-19

	// ElectronMass and NucleonMass are the two masses in kg. Protons and
	// neutrons share NucleonMass.
	ElectronMass float32 = 9.1e-27
	NucleonMass  float32 = 1.6e-27
)

// Charge returns the signed charge of the kind in Coulombs.
func (k Kind) Charge() float32 {
	switch k {
	case Electron:
		return -ElementaryCharge
	case Proton:
		return ElementaryCharge
	default:
		return 0
	}
}

// Mass returns the mass of the kind in kg.
func (k Kind) Mass() float32 {
	if k == Electron {
		return ElectronMass
	}
	return NucleonMass
}

func (k Kind) String() string {
	switch k {
	case Electron:
		return "electron"
	case Proton:
		return "proton"
	case Neutron:
		return "neutron"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a config/CLI name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "electron", "e":
		return Electron, nil
	case "proton", "p":
		return Proton, nil
	case "neutron", "n":
		return Neutron, nil
	default:
		return 0, fmt.Errorf("physics: unknown particle kind %q", s)
	}
}
