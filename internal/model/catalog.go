package model

// QuickCommand is a one-tap instruction on the manager screen.
type QuickCommand struct {
	ID       string
	Text     string
	Icon     string
	Category string
}

type Site struct {
	ID     int
	Name   string
	Region string
	Active bool
}
