package catalog

import "sort"

// Catalog maps store id -> configuration. It is the unit of persistence.
type Catalog map[string]StoreConfig

type StoreConfig struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	SectionTitle    string      `json:"sectionTitle"`
	Theme           Theme       `json:"theme"`
	HeroBanner      HeroBanner  `json:"heroBanner"`
	PaymentInfo     PaymentInfo `json:"paymentInfo"`
	ChatInstruction string      `json:"chatInstruction"`
	Products        []Product   `json:"products"`
}

// Theme maps a CSS custom property name to a hex colour.
type Theme map[string]string

type HeroBanner struct {
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type PaymentInfo struct {
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"` // country code + number, not validated
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// Recognised theme keys. A missing key only leaves its element unstyled.
const (
	ThemePrimary      = "--primary-brown"
	ThemePrimaryLight = "--primary-brown-light"
	ThemeAccent       = "--accent-gold"
	ThemeDarkText     = "--dark-text"
	ThemeLightText    = "--light-text"
	ThemeBackground   = "--background-color"
	ThemeSurface      = "--surface-color"
	ThemeBorder       = "--border-color"
)

var ThemeKeys = []string{
	ThemePrimary, ThemePrimaryLight, ThemeAccent, ThemeDarkText,
	ThemeLightText, ThemeBackground, ThemeSurface, ThemeBorder,
}

// Clone returns a deep copy; the result shares no maps or slices with c.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for id, s := range c {
		out[id] = s.Clone()
	}
	return out
}

func (s StoreConfig) Clone() StoreConfig {
	cp := s
	if s.Theme != nil {
		cp.Theme = make(Theme, len(s.Theme))
		for k, v := range s.Theme {
			cp.Theme[k] = v
		}
	}
	if s.Products != nil {
		cp.Products = make([]Product, len(s.Products))
		copy(cp.Products, s.Products)
	}
	return cp
}

// IDs returns the store ids sorted; catalog order carries no meaning.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s StoreConfig) ProductIndex(id int64) int {
	for i, p := range s.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
