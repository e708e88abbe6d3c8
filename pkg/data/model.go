package data

import "fmt"

type Character struct {
	Name    string
	Status  string // "Alive", "Dead", "unknown"
	Species string
	Gender  string
	Origin  string
	Image   string
}

type PageInfo struct {
	Count int
	Pages int
	Next  int // 0 on the last page
}

type Page struct {
	Results []Character
	Info    PageInfo
}

// Query selects one page of characters. Empty filters match everything.
type Query struct {
	Page    int
	Status  string
	Species string
}

func (q Query) Key() string {
	return fmt.Sprintf("characters:%d:%s:%s", q.Page, q.Status, q.Species)
}
