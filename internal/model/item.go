package model

// Item is the content of one accordion section: the header title and the
// panel body. Whether it is open is never stored.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Find returns the index of the item with id, or -1.
func Find(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
