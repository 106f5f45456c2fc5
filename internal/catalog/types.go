package catalog

import (
	"time"
)

// NavGroup says which header area a navigation destination belongs to.
type NavGroup string

const (
	// GroupMain holds primary navigation, shown in the mobile main drawer.
	GroupMain NavGroup = "main"
	// GroupSecondary holds the top-right links, shown in the secondary drawer.
	GroupSecondary NavGroup = "secondary"
)

// Catalog is the static configuration compiled into the chrome.
type Catalog struct {
	AutoplayInterval time.Duration `yaml:"autoplay_interval" validate:"required,gt=0"`
	ScrollThreshold  int           `yaml:"scroll_threshold" validate:"min=0"`
	Slides           []Slide       `yaml:"slides" validate:"required,min=1,dive"`
	Languages        []Language    `yaml:"languages" validate:"required,min=1,dive"`
	Navigation       []NavLink     `yaml:"navigation" validate:"required,min=1,dive"`
}

// Slide is one promotional item of the hero carousel.
type Slide struct {
	ID            int    `yaml:"id" validate:"required,min=1"`
	Category      string `yaml:"category" validate:"required"`
	Title         string `yaml:"title" validate:"required"`
	Description   string `yaml:"description"`
	ImageRef      string `yaml:"image" validate:"required,uri"`
	IconRef       string `yaml:"icon" validate:"required,symbol"`
	ColorGradient string `yaml:"gradient" validate:"required,symbol"`
}

// Language is an entry of the language picker.
type Language struct {
	Code        string `yaml:"code" validate:"required,lang_code"`
	DisplayName string `yaml:"name" validate:"required"`
	FlagGlyph   string `yaml:"flag"`
}

// NavLink is a navigation destination shown in the header.
type NavLink struct {
	Path    string   `yaml:"path" validate:"required,route_path"`
	Label   string   `yaml:"label" validate:"required"`
	IconRef string   `yaml:"icon" validate:"required,symbol"`
	Group   NavGroup `yaml:"group" validate:"required,oneof=main secondary"`
}

// Links returns the navigation destinations of one group in catalog order.
func (c *Catalog) Links(group NavGroup) []NavLink {
	var links []NavLink
	for _, link := range c.Navigation {
		if link.Group == group {
			links = append(links, link)
		}
	}
	return links
}

// Language looks a language up by code.
func (c *Catalog) Language(code string) (Language, int, bool) {
	for i, lang := range c.Languages {
		if lang.Code == code {
			return lang, i, true
		}
	}
	return Language{}, -1, false
}
