package schema

type Page struct {
	ID             ID                  `json:"id"`
	Title          string              `json:"title"`
	Slug           string              `json:"slug"`
	Content        *JSONString         `json:"content"`
	SeoTitle       *string             `json:"seoTitle"`
	SeoDescription *string             `json:"seoDescription"`
	IsPublished    bool                `json:"isPublished"`
	PublishedAt    *DateTime           `json:"publishedAt"`
	Created        DateTime            `json:"created"`
	PageType       PageType            `json:"pageType"`
	Attributes     []SelectedAttribute `json:"attributes"`
	Metadata       []MetadataItem      `json:"metadata"`
}

func (p Page) NodeID() ID { return p.ID }

type PageType struct {
	ID         ID             `json:"id"`
	Name       string         `json:"name"`
	Slug       string         `json:"slug"`
	Attributes []Attribute    `json:"attributes"`
	Metadata   []MetadataItem `json:"metadata"`
}

func (p PageType) NodeID() ID { return p.ID }

type Menu struct {
	ID    ID         `json:"id"`
	Name  string     `json:"name"`
	Slug  string     `json:"slug"`
	Items []MenuItem `json:"items"`
}

func (m Menu) NodeID() ID { return m.ID }

type MenuItem struct {
	ID         ID          `json:"id"`
	Name       string      `json:"name"`
	Level      int         `json:"level"`
	URL        *string     `json:"url"`
	Menu       *Menu       `json:"menu"`
	Parent     *MenuItem   `json:"parent"`
	Category   *Category   `json:"category"`
	Collection *Collection `json:"collection"`
	Page       *Page       `json:"page"`
	Children   []MenuItem  `json:"children"`
}

func (m MenuItem) NodeID() ID { return m.ID }

// Walk calls fn for the item and then for its descendants, depth first.
// It stops early and returns false when fn returns false.
func (m MenuItem) Walk(fn func(MenuItem) bool) bool {
	if !fn(m) {
		return false
	}
	for _, c := range m.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
