package view

import (
	"io"

	"github.com/pkg/browser"
)

// Navigator sends the user to an external URL.
type Navigator interface {
	Navigate(url string) error
}

// Click navigates to the card's repository page.
func (c Card) Click(n Navigator) error {
	return n.Navigate(c.Href)
}

// BrowserNavigator opens URLs in the system web browser.
type BrowserNavigator struct{}

// NewBrowserNavigator silences the browser launcher's own output, which would
// otherwise be written over the terminal page.
func NewBrowserNavigator() BrowserNavigator {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return BrowserNavigator{}
}

func (BrowserNavigator) Navigate(url string) error {
	return browser.OpenURL(url)
}
