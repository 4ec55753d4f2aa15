// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package models

import "fmt"

// Footer item type discriminators.
const (
	FooterItemBeian       = "beian"
	FooterItemCopyright   = "copyright"
	FooterItemCustomText  = "customText"
	FooterItemCustomLinks = "customLinks"
)

// FooterLink is one entry of a customLinks footer item.
type FooterLink struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// FooterItem is a tagged union over Type. Only the fields belonging to the
// active variant are populated; the rest stay at their zero value and are
// omitted on serialization.
type FooterItem struct {
	Type string `json:"type"`

	// beian
	ICPBeian        string `json:"icpBeian,omitempty"`
	MengICPBeian    string `json:"mengIcpBeian,omitempty"`
	ICPBeianURL     string `json:"icpBeianUrl,omitempty"`
	MengICPBeianURL string `json:"mengIcpBeianUrl,omitempty"`

	// copyright
	AuthorName string `json:"authorName,omitempty"`
	StartYear  int    `json:"startYear,omitempty"`

	// customText
	Text string `json:"text,omitempty"`

	// customLinks
	Links []FooterLink `json:"links,omitempty"`
}

// Validate checks the discriminator and the variant's required fields.
func (i FooterItem) Validate() error {
	switch i.Type {
	case FooterItemBeian:
		return nil
	case FooterItemCopyright:
		if i.AuthorName == "" {
			return fmt.Errorf("copyright item requires authorName")
		}
		return nil
	case FooterItemCustomText:
		if i.Text == "" {
			return fmt.Errorf("customText item requires text")
		}
		return nil
	case FooterItemCustomLinks:
		for idx, l := range i.Links {
			if l.Text == "" || l.URL == "" {
				return fmt.Errorf("customLinks item link %d requires text and url", idx)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown footer item type %q", i.Type)
	}
}

// Footer is the footer section: an ordered item list.
type Footer struct {
	Items []FooterItem `json:"items"`
}

// Validate checks every item; the items array itself may be empty.
func (f Footer) Validate() error {
	for idx, item := range f.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("footer item %d: %w", idx, err)
		}
	}
	return nil
}
