// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package icons

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		wantLib   string
		wantName  string
		wantColor string
	}{
		{"FaGithub", "fa", "FaGithub", ""},
		{"SiTencentqq", "si", "SiTencentqq", "#12B7F5"},
		{"SiNeteasecloudmusic", "si", "SiNeteasecloudmusic", "#DE2F2F"},
		{"SiBilibili", "si", "SiBilibili", "#00A1D6"},
		{"sibilibili", "si", "SiBilibili", "#00A1D6"},
		{"  LuGithub  ", "lu", "LuGithub", ""},
		{"FaSomethingUnknown", "fi", "FiExternalLink", ""},
		{"", "fi", "FiHelpCircle", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lookup(tt.name)
			if got.Library != tt.wantLib || got.Name != tt.wantName {
				t.Errorf("Lookup(%q) = %s/%s, want %s/%s", tt.name, got.Library, got.Name, tt.wantLib, tt.wantName)
			}
			if got.Color != tt.wantColor {
				t.Errorf("Lookup(%q).Color = %q, want %q", tt.name, got.Color, tt.wantColor)
			}
		})
	}
}

func TestRegistryConsistency(t *testing.T) {
	for name, icon := range All() {
		if icon.Library == "" {
			t.Errorf("icon %q has empty library", name)
		}
		if icon.Name != name {
			t.Errorf("icon %q keyed under wrong name %q", icon.Name, name)
		}
	}
	if len(Names()) != len(All()) {
		t.Error("Names and All disagree on registry size")
	}
}
