// ABOUTME: Generic clickable card: title/subtitle projections over any item
// ABOUTME: One presentational shape serves every entity list

package card

// Card renders one item as a title plus optional subtitle and carries a
// click action. It knows nothing about the item's shape; the projection
// functions decide what to show, which lets a single card type back every
// entity list.
type Card[T any] struct {
	Item     T
	Title    func(T) string
	Subtitle func(T) string
	OnClick  func(T)
}

// Lines returns the rendered text rows: the title, then the subtitle when
// a projection is set and yields text.
func (c Card[T]) Lines() []string {
	lines := []string{c.Title(c.Item)}
	if c.Subtitle != nil {
		if s := c.Subtitle(c.Item); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// Click fires the action with the card's item. Cards without an action
// ignore clicks.
func (c Card[T]) Click() {
	if c.OnClick != nil {
		c.OnClick(c.Item)
	}
}
