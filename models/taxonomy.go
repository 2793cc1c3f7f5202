package models

// Category → Subcategory → Fit is a strict tree: a Fit's effective category
// is its subcategory's category.

type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func (c Category) RefKey() string { return c.ID }

type Subcategory struct {
	ID       string        `json:"_id"`
	Name     string        `json:"name"`
	Category Ref[Category] `json:"category"`
}

func (s Subcategory) RefKey() string { return s.ID }

type Fit struct {
	ID          string           `json:"_id"`
	Name        string           `json:"name"`
	Subcategory Ref[Subcategory] `json:"subcategory"`
}

func (f Fit) RefKey() string { return f.ID }
