package model

// ConversionProfile is a fixed re-encode target offered when the downloaded
// video uses a codec that editors handle poorly.
type ConversionProfile struct {
	Choice    string // menu key typed or selected by the user
	Name      string
	Suffix    string // appended to the source base name
	Extension string // output container extension, with dot
	Label     string // menu description
}

// Conversion profile choices
const (
	ChoiceProResHQ    = "1"
	ChoiceProResProxy = "2"
	ChoiceH264        = "3"
	ChoiceHEVC        = "4"
)

var (
	ProfileProResHQ = ConversionProfile{
		Choice:    ChoiceProResHQ,
		Name:      "ProRes 422 HQ",
		Suffix:    "_PRORES_HQ",
		Extension: ".mov",
		Label:     "ProRes 422 HQ (very large file)",
	}
	ProfileProResProxy = ConversionProfile{
		Choice:    ChoiceProResProxy,
		Name:      "ProRes Proxy",
		Suffix:    "_PRORES_PROXY",
		Extension: ".mov",
		Label:     "ProRes Proxy (smaller, for editing)",
	}
	ProfileH264 = ConversionProfile{
		Choice:    ChoiceH264,
		Name:      "H.264 MP4",
		Suffix:    "_H264",
		Extension: ".mp4",
		Label:     "H.264 MP4 (opens directly in editors)",
	}
	ProfileHEVC = ConversionProfile{
		Choice:    ChoiceHEVC,
		Name:      "HEVC MP4",
		Suffix:    "_HEVC",
		Extension: ".mp4",
		Label:     "HEVC MP4 (smaller, needs recent software)",
	}
)

// Profiles lists all conversion profiles in menu order
var Profiles = []ConversionProfile{ProfileProResHQ, ProfileProResProxy, ProfileH264, ProfileHEVC}

// ProfileByChoice returns the profile for a menu key
func ProfileByChoice(choice string) (ConversionProfile, bool) {
	for _, p := range Profiles {
		if p.Choice == choice {
			return p, true
		}
	}
	return ConversionProfile{}, false
}
