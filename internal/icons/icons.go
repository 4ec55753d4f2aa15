// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package icons resolves social link icon names to renderer descriptors so
// the frontend does not infer icon libraries from name prefixes.
package icons

import "strings"

// Icon describes one renderable icon. Library is the react-icons pack
// prefix ("fa", "si", "lu", "fi", ...); Color is a brand hex color or empty
// for the theme default.
type Icon struct {
	Library string `json:"library"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
}

var (
	// missing renders for social links with no icon set at all.
	missing = Icon{Library: "fi", Name: "FiHelpCircle"}

	// fallback renders for icon names the registry does not know.
	fallback = Icon{Library: "fi", Name: "FiExternalLink"}
)

// registry is the supported icon set, keyed by the lowercase icon name
// stored on social links.
var registry = map[string]Icon{
	"fagithub":            {Library: "fa", Name: "FaGithub"},
	"fatwitter":           {Library: "fa", Name: "FaTwitter"},
	"faenvelope":          {Library: "fa", Name: "FaEnvelope"},
	"falinkedin":          {Library: "fa", Name: "FaLinkedin", Color: "#0A66C2"},
	"fayoutube":           {Library: "fa", Name: "FaYoutube", Color: "#FF0000"},
	"fasteam":             {Library: "fa", Name: "FaSteam"},
	"farssquare":          {Library: "fa", Name: "FaRssSquare", Color: "#FFA500"},
	"six":                 {Library: "si", Name: "SiX"},
	"sitencentqq":         {Library: "si", Name: "SiTencentqq", Color: "#12B7F5"},
	"siwechat":            {Library: "si", Name: "SiWechat", Color: "#07C160"},
	"sibilibili":          {Library: "si", Name: "SiBilibili", Color: "#00A1D6"},
	"sineteasecloudmusic": {Library: "si", Name: "SiNeteasecloudmusic", Color: "#DE2F2F"},
	"sisteam":             {Library: "si", Name: "SiSteam"},
	"sitelegram":          {Library: "si", Name: "SiTelegram", Color: "#26A5E4"},
	"sidiscord":           {Library: "si", Name: "SiDiscord", Color: "#5865F2"},
	"lugithub":            {Library: "lu", Name: "LuGithub"},
	"lumail":              {Library: "lu", Name: "LuMail"},
	"lurss":               {Library: "lu", Name: "LuRss", Color: "#FFA500"},
	"lulink":              {Library: "lu", Name: "LuLink"},
}

// Lookup resolves an icon name to its descriptor. Unknown names resolve to
// a generic external-link icon, empty names to a placeholder; neither is an
// error. Matching is case-insensitive.
func Lookup(name string) Icon {
	name = strings.TrimSpace(name)
	if name == "" {
		return missing
	}
	if icon, ok := registry[strings.ToLower(name)]; ok {
		return icon
	}
	return fallback
}

// Names returns every supported icon name in canonical casing. The order is
// unspecified.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, icon := range registry {
		names = append(names, icon.Name)
	}
	return names
}

// All returns every registered icon keyed by canonical name.
func All() map[string]Icon {
	out := make(map[string]Icon, len(registry))
	for _, icon := range registry {
		out[icon.Name] = icon
	}
	return out
}
