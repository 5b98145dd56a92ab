package store

import "github.com/Aya-Jafar/storefront-api/pkg/dto"

// Toggle adds or removes a product from a list depending on membership,
// announcing either outcome on the snackbar.
type Toggle struct {
	List          *ItemList
	Bar           *Snackbar
	AddMessage    string
	RemoveMessage string
}

// Handle flips the product's membership and reports whether it ended up in
// the list.
func (t Toggle) Handle(p dto.ProductDTO) bool {
	if t.List.Contains(p.ID) {
		t.List.Remove(p.ID)
		if t.Bar != nil {
			t.Bar.Show(t.RemoveMessage, TypeInfo, DefaultTimeout)
		}
		return false
	}
	t.List.Add(p)
	if t.Bar != nil {
		t.Bar.Show(t.AddMessage, TypeInfo, DefaultTimeout)
	}
	return true
}
